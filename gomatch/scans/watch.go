package scans

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/gorilla/websocket"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
	"github.com/GDVFox/gomatch/match_node/engine"
)

type socketMessage struct {
	Code string `json:"code"`
	Body string `json:"body"`
}

// WatchCommandHelper потоковое сканирование текста из stdin.
type WatchCommandHelper struct {
	fs *flag.FlagSet

	help     bool
	patterns []string
}

// NewWatchCommandHelper создает новый WatchCommandHelper
func NewWatchCommandHelper() *WatchCommandHelper {
	c := &WatchCommandHelper{
		fs: flag.NewFlagSet("watch", flag.ContinueOnError),
	}

	c.fs.StringSliceVarP(&c.patterns, "patterns", "p", nil, "Patterns to scan with, all known when empty")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *WatchCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s scans watch' scans text from stdin line by line, prints matches as they close.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *WatchCommandHelper) Init(args []string) error {
	return c.fs.Parse(args)
}

// Run запускает команду
func (c *WatchCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	conn, err := matchclient.MatchNode.DialWatch(c.patterns)
	if err != nil {
		pterm.Error.Printfln("Can not start watch: %s", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go runReceiveLoop(conn, done)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		// Scanner отрезает перевод строки, а для строчных
		// комментариев он значим, возвращаем его.
		chunk := append(scanner.Bytes(), '\n')
		if err := conn.WriteMessage(websocket.TextMessage, chunk); err != nil {
			pterm.Error.Printfln("Can not send text: %s", err)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Printfln("Can not read text from stdin: %s", err)
	}

	// Закрываем свою сторону и ждем хвостовые совпадения.
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	<-done
}

func runReceiveLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// match_node закрывает сокет кадром без кода статуса.
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				pterm.Error.Printfln("Watch closed unexpectedly: %s", err)
			}
			return
		}

		msg := &socketMessage{}
		if err := json.Unmarshal(data, msg); err != nil {
			pterm.Error.Printfln("Can not decode message: %s", err)
			continue
		}

		switch msg.Code {
		case "scan":
			pterm.DefaultBasicText.Printfln("Watching, scan id: %s", msg.Body)
		case "match":
			m := &engine.Match{}
			if err := json.Unmarshal([]byte(msg.Body), m); err != nil {
				pterm.Error.Printfln("Can not decode match: %s", err)
				continue
			}
			matchPrinter.Printfln("%s %d:%d - %d:%d seq=%d",
				m.Pattern,
				m.Fragment.Starting.Line, m.Fragment.Starting.Pos,
				m.Fragment.Ending.Line, m.Fragment.Ending.Pos,
				m.Seq)
		default:
			pterm.Error.Printfln("Watch error '%s': %s", msg.Code, msg.Body)
		}
	}
}
