package patterns

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// UpdatePattern заменяет описание существующего шаблона.
func UpdatePattern(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	patternName := vars["pattern_name"]
	if patternName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "pattern_name must be not empty")), nil
	}

	p := &pattern.Pattern{}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	// Имя шаблона берется из пути, тело может его не содержать.
	p.Name = patternName
	if err := p.Validate(); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	if err := external.ETCD.UpdatePattern(r.Context(), p); err != nil {
		if errors.Cause(err) == storage.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}
	registry.Registry.Set(p)

	return httplib.NewOKResponse(nil, httplib.ContentTypeRaw), nil
}
