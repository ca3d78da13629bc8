package ping

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
)

// NodeState краткое состояние узла.
type NodeState struct {
	Patterns    int   `json:"patterns"`
	JournalSize int64 `json:"journal_size"`
}

// Ping сообщает, что узел жив, и возвращает его краткое состояние.
func Ping(r *http.Request) (*httplib.Response, error) {
	state := &NodeState{
		Patterns:    registry.Registry.Size(),
		JournalSize: engine.Engine.JournalSize(),
	}

	stateData, err := json.Marshal(state)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadStateErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(stateData, httplib.ContentTypeJSON), nil
}
