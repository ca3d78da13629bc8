package patterns

import (
	"errors"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
	"github.com/GDVFox/gomatch/match_node/pattern"
)

// CreateCommandHelper создание нового шаблона.
type CreateCommandHelper struct {
	fs *flag.FlagSet

	help        bool
	name        string
	patternType string
	word        string
}

// NewCreateCommandHelper создает новый CreateCommandHelper
func NewCreateCommandHelper() *CreateCommandHelper {
	c := &CreateCommandHelper{
		fs: flag.NewFlagSet("new", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of a new pattern")
	c.fs.StringVarP(&c.patternType, "type", "t", "", "Type of a new pattern, possible values: word, comment")
	c.fs.StringVarP(&c.word, "word", "w", "", "Word to match, only for word type")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *CreateCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s patterns new' creates new pattern with given name, type and word.", matchclient.MatchNodeAddress)
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
	if c.patternType == "" {
		return errors.New("type can not be empty")
	}
	return nil
}

// Run запускает команду
func (c *CreateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	p := &pattern.Pattern{
		Name: c.name,
		Type: c.patternType,
		Word: c.word,
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Creating pattern...")
	if err := matchclient.MatchNode.CreatePattern(p); err != nil {
		loadSpinner.Fail("Can not create pattern: ", err)
		return
	}
	loadSpinner.Success("Pattern created!")
}
