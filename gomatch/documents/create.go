package documents

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// CreateCommandHelper загрузка нового документа.
type CreateCommandHelper struct {
	fs *flag.FlagSet

	help bool
	name string
	file string
}

// NewCreateCommandHelper создает новый CreateCommandHelper
func NewCreateCommandHelper() *CreateCommandHelper {
	c := &CreateCommandHelper{
		fs: flag.NewFlagSet("new", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of a new document")
	c.fs.StringVarP(&c.file, "file", "f", "", "Text file with new document")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *CreateCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s documents new' loads document for use when running scans.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *CreateCommandHelper) Init(args []string) error {
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
func (c *CreateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	document, err := os.ReadFile(c.file)
	if err != nil {
		pterm.Error.Printfln("Can not read document %s: %s", c.file, err)
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Creating document...")
	if err := matchclient.MatchNode.CreateDocument(c.name, document); err != nil {
		loadSpinner.Fail("Can not create document: ", err)
		return
	}
	loadSpinner.Success("Document created!")
}
