package scans

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// ScanRequest описание запуска сканирования.
// Заполняется ровно одно из полей text и document.
type ScanRequest struct {
	Text     string   `json:"text,omitempty"`
	Document string   `json:"document,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
}

// RunScan запускает сканирование текста по выбранным шаблонам.
func RunScan(r *http.Request) (*httplib.Response, error) {
	req := &ScanRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	if (req.Text == "") == (req.Document == "") {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadTextErrorCode, "expected exactly one of text and document")), nil
	}

	text := req.Text
	if req.Document != "" {
		document, err := external.ETCD.LoadDocument(r.Context(), req.Document)
		if err != nil {
			if errors.Cause(err) == storage.ErrNotFound {
				return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
			}
			return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
		}
		text = string(document)
	}

	if len(text) > engine.Engine.MaxTextSize() {
		message := fmt.Sprintf("text is too large: %d > %d", len(text), engine.Engine.MaxTextSize())
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadTextErrorCode, message)), nil
	}

	pats, err := registry.Registry.Resolve(req.Patterns)
	if err != nil {
		if errors.Cause(err) == registry.ErrUnknownPattern {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	report, err := engine.Engine.RunScan(r.Context(), uuid.New().String(), text, pats)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ScanErrorCode, err.Error())), nil
	}

	reportData, err := json.Marshal(report)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ScanErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(reportData, httplib.ContentTypeJSON), nil
}
