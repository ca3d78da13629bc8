package matches

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// AckCommandHelper подтверждение получения совпадений.
type AckCommandHelper struct {
	fs *flag.FlagSet

	help   bool
	border uint64
}

// NewAckCommandHelper возвращает новый AckCommandHelper.
func NewAckCommandHelper() *AckCommandHelper {
	c := &AckCommandHelper{
		fs: flag.NewFlagSet("ack", flag.ContinueOnError),
	}

	c.fs.Uint64VarP(&c.border, "border", "b", 0, "Matches with seq up to border inclusive will be removed")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// Init инициализирует состояние команды.
func (c *AckCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if !c.fs.Changed("border") {
		return errors.New("border must be set")
	}
	return nil
}

// PrintHelp печатает сообщение с помощью по команде
func (c *AckCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s matches ack' confirms matches up to given border and removes them.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Run запускает комнаду.
func (c *AckCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Acknowledging matches...")
	result, err := matchclient.MatchNode.AckMatches(c.border)
	if err != nil {
		loadSpinner.Fail("Can not acknowledge matches: ", err)
		return
	}
	loadSpinner.Success(fmt.Sprintf("%d matches removed!", result.Trimmed))
}
