package matches

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// ListCommandHelper получение совпадений из журнала.
type ListCommandHelper struct {
	fs *flag.FlagSet

	help  bool
	limit int
}

// NewListCommandHelper возвращает новый ListCommandHelper.
func NewListCommandHelper() *ListCommandHelper {
	c := &ListCommandHelper{
		fs: flag.NewFlagSet("list", flag.ContinueOnError),
	}

	c.fs.IntVarP(&c.limit, "limit", "l", 0, "Max number of matches to return, all when 0")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// Init инициализирует состояние команды.
func (c *ListCommandHelper) Init(args []string) error {
	return c.fs.Parse(args)
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ListCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s matches list' returns oldest journaled matches.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Run запускает комнаду.
func (c *ListCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading matches...")
	matchList, err := matchclient.MatchNode.GetMatchesList(c.limit)
	if err != nil {
		loadSpinner.Fail("Can not load matches: ", err)
		return
	}
	loadSpinner.Success("Matches loaded:")
	pterm.Println()

	if len(matchList.Matches) == 0 {
		pterm.DefaultBasicText.Println("Journal is empty.")
		return
	}

	tableData := pterm.TableData{{"SEQ", "TIME", "SCAN", "PATTERN", "LINES", "INDEXES"}}
	for _, m := range matchList.Matches {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", m.Seq),
			m.Time.Format(time.RFC3339),
			m.ScanID,
			m.Pattern,
			fmt.Sprintf("%d:%d - %d:%d", m.Fragment.Starting.Line, m.Fragment.Starting.Pos, m.Fragment.Ending.Line, m.Fragment.Ending.Pos),
			fmt.Sprintf("[%d, %d)", m.Fragment.Starting.Index, m.Fragment.Ending.Index),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
