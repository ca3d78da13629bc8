package documents

import (
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// ListCommandHelper получение списка документов.
type ListCommandHelper struct {
	fs *flag.FlagSet

	help bool
}

// NewListCommandHelper возвращает новый ListCommandHelper.
func NewListCommandHelper() *ListCommandHelper {
	c := &ListCommandHelper{
		fs: flag.NewFlagSet("list", flag.ContinueOnError),
	}

	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// Init инициализирует состояние команды.
func (c *ListCommandHelper) Init(args []string) error {
	return c.fs.Parse(args)
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ListCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s documents list' returns list of available documents.", matchclient.MatchNodeAddress)
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

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading documents list...")
	documentList, err := matchclient.MatchNode.GetDocumentsList()
	if err != nil {
		loadSpinner.Fail("Can not load documents list: ", err)
		return
	}
	loadSpinner.Success("Documents loaded:")
	pterm.Println()

	items := make([]pterm.BulletListItem, 0)
	for _, documentName := range documentList.Documents {
		item := pterm.BulletListItem{
			Level:       0,
			Text:        documentName,
			Bullet:      ">",
			BulletStyle: pterm.NewStyle(pterm.FgYellow),
		}
		items = append(items, item)
	}

	pterm.DefaultBulletList.WithItems(items).Render()
}
