package documents

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// UpdateCommandHelper замена существующего документа.
type UpdateCommandHelper struct {
	fs *flag.FlagSet

	help bool
	name string
	file string
}

// NewUpdateCommandHelper создает новый UpdateCommandHelper
func NewUpdateCommandHelper() *UpdateCommandHelper {
	c := &UpdateCommandHelper{
		fs: flag.NewFlagSet("set", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the document to replace")
	c.fs.StringVarP(&c.file, "file", "f", "", "Text file with new document content")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *UpdateCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s documents set' replaces specified document.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *UpdateCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.name == "" {
		return errors.New("name can not be empty")
	}
	if c.file == "" {
		return errors.New("file can not be empty")
	}
	return nil
}

// Run запускает команду
func (c *UpdateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	document, err := os.ReadFile(c.file)
	if err != nil {
		pterm.Error.Printfln("Can not read document %s: %s", c.file, err)
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Updating document...")
	if err := matchclient.MatchNode.UpdateDocument(c.name, document); err != nil {
		loadSpinner.Fail("Can not update document: ", err)
		return
	}
	loadSpinner.Success("Document updated!")
}
