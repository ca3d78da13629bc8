package matches

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/util/httplib"
)

// AckResult количество удаленных из журнала записей.
type AckResult struct {
	Trimmed int `json:"trimmed"`
}

// AckMatches удаляет из журнала совпадения с номерами не больше border.
// Потребители подтверждают этим, что совпадения они уже забрали.
func AckMatches(r *http.Request) (*httplib.Response, error) {
	borderValue := r.FormValue("border")
	if borderValue == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadBorderErrorCode, "border must be not empty")), nil
	}
	border, err := strconv.ParseUint(borderValue, 10, 64)
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadBorderErrorCode, err.Error())), nil
	}

	trimmed, err := engine.Engine.Ack(border)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.JournalErrorCode, err.Error())), nil
	}

	resultData, err := json.Marshal(&AckResult{Trimmed: trimmed})
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.JournalErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(resultData, httplib.ContentTypeJSON), nil
}
