package documents

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// GetDocument получает текст документа.
func GetDocument(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	documentName := vars["document_name"]
	if documentName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "document_name must be not empty")), nil
	}

	document, err := external.ETCD.LoadDocument(r.Context(), documentName)
	if err != nil {
		if errors.Cause(err) == storage.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(document, httplib.ContentTypeText), nil
}
