package documents

import (
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

const (
	maxFormSize = 256 * 1024 * 1024 // 256MB
)

// CreateDocument загружает новый документ.
func CreateDocument(r *http.Request) (*httplib.Response, error) {
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}
	name := r.FormValue("name")
	if name == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "expected non empty name")), nil
	}
	documentFile, _, err := r.FormFile("document")
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}
	document, err := ioutil.ReadAll(documentFile)
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}

	if err := external.ETCD.RegisterDocument(r.Context(), name, document); err != nil {
		if errors.Cause(err) == storage.ErrAlreadyExists {
			return httplib.NewConflictResponse(httplib.NewErrorBody(common.NameAlreadyExistsErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(nil, httplib.ContentTypeRaw), nil
}
