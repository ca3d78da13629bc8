package patterns

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// CreatePattern создает описание шаблона.
func CreatePattern(r *http.Request) (*httplib.Response, error) {
	p := &pattern.Pattern{}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	if p.Name == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "expected non empty name")), nil
	}
	if err := p.Validate(); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	if err := external.ETCD.RegisterPattern(r.Context(), p); err != nil {
		if errors.Cause(err) == storage.ErrAlreadyExists {
			return httplib.NewConflictResponse(httplib.NewErrorBody(common.NameAlreadyExistsErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}
	registry.Registry.Set(p)

	return httplib.NewOKResponse(nil, httplib.ContentTypeRaw), nil
}
