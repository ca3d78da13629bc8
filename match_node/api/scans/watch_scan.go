package scans

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/lib/go-automata"
	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util"
	"github.com/GDVFox/gomatch/util/httplib"
)

const (
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // мы уже прошли слой CORS
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type socketMessage struct {
	Code string `json:"code"`
	Body string `json:"body"`
}

func newSocketMessage(c string, body string) []byte {
	sockMsg := &socketMessage{
		Code: c,
		Body: body,
	}
	data, err := json.Marshal(sockMsg)
	if err != nil {
		return nil
	}
	return data
}

type patternScanner struct {
	name    string
	scanner *automata.StreamScanner
}

// WatchScan сканирует поток текста, приходящий по websocket.
// Каждое сообщение клиента добавляется к тексту, найденные
// совпадения записываются в журнал и отправляются в ответ.
func WatchScan(w http.ResponseWriter, r *http.Request) error {
	logger := r.Context().Value(httplib.RequestLogger).(*util.Logger)

	var patternNames []string
	if namesValue := r.FormValue("patterns"); namesValue != "" {
		patternNames = strings.Split(namesValue, ",")
	}

	pats, err := registry.Registry.Resolve(patternNames)
	if err != nil {
		var resp *httplib.Response
		if errors.Cause(err) == registry.ErrUnknownPattern {
			resp = httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error()))
		} else {
			resp = httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error()))
		}
		return resp.WriteTo(w)
	}

	scanners := make([]*patternScanner, 0, len(pats))
	for _, p := range pats {
		a, err := p.Automaton()
		if err != nil {
			resp := httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error()))
			return resp.WriteTo(w)
		}
		scanners = append(scanners, &patternScanner{name: p.Name, scanner: automata.NewStreamScanner(a)})
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	go runWatchLoop(conn, uuid.New().String(), scanners, logger.WithName("watch loop"))
	return nil
}

func runWatchLoop(conn *websocket.Conn, scanID string, scanners []*patternScanner, l *util.Logger) {
	defer conn.Close()
	defer conn.WriteMessage(websocket.CloseMessage, []byte{})

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, newSocketMessage("scan", scanID)); err != nil {
		l.Warnf("can not send scan id for %s: %s", scanID, err)
		return
	}

	for {
		_, chunk, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				l.Warnf("watch %s closed unexpectedly: %s", scanID, err)
			}
			break
		}

		sendFailed := false
		for _, ps := range scanners {
			if err := sendMatches(conn, scanID, ps.name, ps.scanner.Feed(chunk), l); err != nil {
				l.Warnf("can not send matches for %s: %s", scanID, err)
				sendFailed = true
			}
		}
		if sendFailed {
			break
		}
	}

	// Незакрытые окна могут прятать совпадения, добираем их.
	for _, ps := range scanners {
		if err := sendMatches(conn, scanID, ps.name, ps.scanner.Finish(), l); err != nil {
			l.Warnf("can not send tail matches for %s: %s", scanID, err)
		}
	}
}

// sendMatches записывает фрагменты в журнал и отправляет их клиенту.
// Потеря соединения не прерывает запись в журнал.
func sendMatches(conn *websocket.Conn, scanID string, patternName string, fragments []automata.Fragment, l *util.Logger) error {
	var sendErr error
	for _, fragment := range fragments {
		seq, err := engine.Engine.Record(scanID, patternName, fragment)
		if err != nil {
			l.Warnf("can not journal match for %s: %s", scanID, err)

			jsonErr := newSocketMessage(common.JournalErrorCode, err.Error())
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, jsonErr); err != nil && sendErr == nil {
				sendErr = err
			}
			continue
		}

		if sendErr != nil {
			continue
		}

		match := &engine.Match{Pattern: patternName, Seq: seq, Fragment: fragment}
		matchData, err := json.Marshal(match)
		if err != nil {
			sendErr = err
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, newSocketMessage("match", string(matchData))); err != nil {
			sendErr = err
		}
	}
	return sendErr
}
