package patterns

import (
	"errors"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
	"github.com/GDVFox/gomatch/match_node/pattern"
)

// UpdateCommandHelper замена существующего шаблона.
type UpdateCommandHelper struct {
	fs *flag.FlagSet

	help        bool
	name        string
	patternType string
	word        string
}

// NewUpdateCommandHelper создает новый UpdateCommandHelper
func NewUpdateCommandHelper() *UpdateCommandHelper {
	c := &UpdateCommandHelper{
		fs: flag.NewFlagSet("set", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the pattern to replace")
	c.fs.StringVarP(&c.patternType, "type", "t", "", "New type of the pattern, possible values: word, comment")
	c.fs.StringVarP(&c.word, "word", "w", "", "New word to match, only for word type")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *UpdateCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s patterns set' replaces specified pattern.", matchclient.MatchNodeAddress)
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
	if c.patternType == "" {
		return errors.New("type can not be empty")
	}
	return nil
}

// Run запускает команду
func (c *UpdateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	p := &pattern.Pattern{
		Name: c.name,
		Type: c.patternType,
		Word: c.word,
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Updating pattern...")
	if err := matchclient.MatchNode.UpdatePattern(p); err != nil {
		loadSpinner.Fail("Can not update pattern: ", err)
		return
	}
	loadSpinner.Success("Pattern updated!")
}
