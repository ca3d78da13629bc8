package matches

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/GDVFox/gomatch/lib/go-automata"
	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/util/httplib"
)

// MatchRecord совпадение, сохраненное в журнале.
type MatchRecord struct {
	Seq      uint64            `json:"seq"`
	Time     time.Time         `json:"time"`
	ScanID   string            `json:"scan_id"`
	Pattern  string            `json:"pattern"`
	Fragment automata.Fragment `json:"fragment"`
}

// MatchList список совпадений из журнала.
type MatchList struct {
	Matches []*MatchRecord `json:"matches"`
}

// ListMatches получает накопленные в журнале совпадения,
// начиная с самых старых.
func ListMatches(r *http.Request) (*httplib.Response, error) {
	limit := 0
	if limitValue := r.FormValue("limit"); limitValue != "" {
		parsedLimit, err := strconv.Atoi(limitValue)
		if err != nil {
			return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadLimitErrorCode, err.Error())), nil
		}
		limit = parsedLimit
	}

	records, err := engine.Engine.Matches(limit)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.JournalErrorCode, err.Error())), nil
	}

	list := &MatchList{Matches: make([]*MatchRecord, 0, len(records))}
	for _, record := range records {
		list.Matches = append(list.Matches, &MatchRecord{
			Seq:      record.Seq(),
			Time:     record.Time(),
			ScanID:   record.ScanName(),
			Pattern:  record.PatternName(),
			Fragment: record.Fragment(),
		})
	}

	matchesData, err := json.Marshal(list)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.JournalErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(matchesData, httplib.ContentTypeJSON), nil
}
