package documents

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// UpdateDocument заменяет существующий документ.
func UpdateDocument(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	documentName := vars["document_name"]
	if documentName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "document_name must be not empty")), nil
	}

	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}
	documentFile, _, err := r.FormFile("document")
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}
	document, err := ioutil.ReadAll(documentFile)
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}

	if err := external.ETCD.UpdateDocument(r.Context(), documentName, document); err != nil {
		if errors.Cause(err) == storage.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(nil, httplib.ContentTypeRaw), nil
}
