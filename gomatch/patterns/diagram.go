package patterns

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// DiagramCommandHelper получение диаграммы автомата шаблона.
type DiagramCommandHelper struct {
	fs *flag.FlagSet

	help bool
	name string
	out  string
}

// NewDiagramCommandHelper создает новый DiagramCommandHelper
func NewDiagramCommandHelper() *DiagramCommandHelper {
	c := &DiagramCommandHelper{
		fs: flag.NewFlagSet("diagram", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the pattern to draw")
	c.fs.StringVarP(&c.out, "out", "o", "", "Output SVG file, <name>.svg when empty")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *DiagramCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s patterns diagram' saves SVG diagram of pattern automaton.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *DiagramCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.name == "" {
		return errors.New("name can not be empty")
	}
	if c.out == "" {
		c.out = c.name + ".svg"
	}
	return nil
}

// Run запускает команду
func (c *DiagramCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading pattern diagram...")
	diagram, err := matchclient.MatchNode.GetPatternDiagram(c.name)
	if err != nil {
		loadSpinner.Fail("Can not get pattern diagram: ", err)
		return
	}
	loadSpinner.Success("Pattern diagram loaded!")

	f, err := os.Create(c.out)
	if err != nil {
		pterm.Error.Printfln("Can not open output file %s: %s", c.out, err)
		return
	}
	if _, err := f.Write(diagram); err != nil {
		pterm.Error.Printfln("Can not write diagram to file %s: %s", c.out, err)
		return
	}
	pterm.DefaultBasicText.Printfln("Diagram saved to %s", c.out)
}
