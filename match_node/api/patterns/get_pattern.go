package patterns

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
)

// GetPattern получает описание шаблона.
func GetPattern(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	patternName := vars["pattern_name"]
	if patternName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "pattern_name must be not empty")), nil
	}

	p, err := registry.Registry.Get(patternName)
	if err != nil {
		if errors.Cause(err) == registry.ErrUnknownPattern {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	patternData, err := json.Marshal(p)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(patternData, httplib.ContentTypeJSON), nil
}
