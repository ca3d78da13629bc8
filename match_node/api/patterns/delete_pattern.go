package patterns

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// DeletePattern удаляет шаблон, если он существует.
func DeletePattern(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	patternName := vars["pattern_name"]
	if patternName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "pattern_name must be not empty")), nil
	}

	if err := external.ETCD.DeletePattern(r.Context(), patternName); err != nil {
		if errors.Cause(err) == storage.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}
	registry.Registry.Delete(patternName)

	return httplib.NewOKResponse(nil, httplib.ContentTypeRaw), nil
}
