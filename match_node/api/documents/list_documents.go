package documents

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/util/httplib"
)

// DocumentList список имен документов.
type DocumentList struct {
	Documents []string `json:"documents"`
}

// ListDocuments получает список названий документов.
func ListDocuments(r *http.Request) (*httplib.Response, error) {
	documentNames, err := external.ETCD.LoadDocumentNames(r.Context())
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}

	list := &DocumentList{Documents: documentNames}
	documentsData, err := json.Marshal(list)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadDocumentErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(documentsData, httplib.ContentTypeJSON), nil
}
