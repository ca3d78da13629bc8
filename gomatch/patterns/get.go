package patterns

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// GetCommandHelper получение конкретного шаблона.
type GetCommandHelper struct {
	fs *flag.FlagSet

	help   bool
	name   string
	format string
	out    string
}

// NewGetCommandHelper создает новый GetCommandHelper
func NewGetCommandHelper() *GetCommandHelper {
	c := &GetCommandHelper{
		fs: flag.NewFlagSet("get", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the pattern to load")
	c.fs.StringVarP(&c.format, "format", "f", "yaml", "Format of output, possible values: json, yaml")
	c.fs.StringVarP(&c.out, "out", "o", "", "Output file")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *GetCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s patterns get' returns description of specified pattern.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *GetCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.name == "" {
		return errors.New("name can not be empty")
	}

	if c.format != jsonExt && c.format != yamlExt {
		return fmt.Errorf("format possible values is: json, yaml: got %s", c.format)
	}

	return nil
}

// Run запускает команду
func (c *GetCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading pattern...")
	p, err := matchclient.MatchNode.GetPattern(c.name)
	if err != nil {
		loadSpinner.Fail("Can not get pattern: ", err)
		return
	}
	loadSpinner.Success("Pattern loaded!")

	var patternData []byte
	switch c.format {
	case jsonExt:
		patternData, err = json.MarshalIndent(p, "", "\t")
	case yamlExt:
		patternData, err = yaml.Marshal(p)
	}
	if err != nil {
		pterm.Error.Printfln("Can not marshal pattern data to format %s: %s", c.format, err)
		return
	}

	if c.out == "" {
		pterm.Println()
		pterm.DefaultBasicText.Println(string(patternData))
	} else {
		f, err := os.Create(c.out)
		if err != nil {
			pterm.Error.Printfln("Can not open output file %s: %s", c.out, err)
			return
		}
		if _, err := f.Write(patternData); err != nil {
			pterm.Error.Println("Can not write pattern to file %s: %s", c.out, err)
			return
		}
	}
}
