package patterns

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
)

// PatternList список имен шаблонов.
type PatternList struct {
	Patterns []string `json:"patterns"`
}

// ListPatterns получает список названий шаблонов.
func ListPatterns(r *http.Request) (*httplib.Response, error) {
	list := &PatternList{Patterns: registry.Registry.Names()}
	patternsData, err := json.Marshal(list)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(patternsData, httplib.ContentTypeJSON), nil
}
