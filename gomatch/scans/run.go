package scans

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
	"github.com/GDVFox/gomatch/match_node/api/scans"
)

// RunCommandHelper запуск сканирования.
type RunCommandHelper struct {
	fs *flag.FlagSet

	help     bool
	file     string
	document string
	patterns []string
}

// NewRunCommandHelper создает новый RunCommandHelper
func NewRunCommandHelper() *RunCommandHelper {
	c := &RunCommandHelper{
		fs: flag.NewFlagSet("run", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.file, "file", "f", "", "Local text file to scan")
	c.fs.StringVarP(&c.document, "document", "d", "", "Name of saved document to scan")
	c.fs.StringSliceVarP(&c.patterns, "patterns", "p", nil, "Patterns to scan with, all known when empty")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *RunCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'gomatch %s scans run' scans given text or saved document and prints report.", matchclient.MatchNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *RunCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if (c.file == "") == (c.document == "") {
		return errors.New("expected exactly one of file and document")
	}
	return nil
}

// Run запускает команду
func (c *RunCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	req := &scans.ScanRequest{
		Document: c.document,
		Patterns: c.patterns,
	}
	if c.file != "" {
		text, err := os.ReadFile(c.file)
		if err != nil {
			pterm.Error.Printfln("Can not read text from file %s: %s", c.file, err)
			return
		}
		req.Text = string(text)
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Running scan...")
	report, err := matchclient.MatchNode.RunScan(req)
	if err != nil {
		loadSpinner.Fail("Can not run scan: ", err)
		return
	}
	loadSpinner.Success("Scan finished: ", report.ScanID)
	pterm.Println()

	patternNames := make([]string, 0, len(report.Accepted))
	for patternName := range report.Accepted {
		patternNames = append(patternNames, patternName)
	}
	sort.Strings(patternNames)

	for _, patternName := range patternNames {
		if report.Accepted[patternName] {
			acceptedPrinter.Println(patternName)
		} else {
			rejectedPrinter.Println(patternName)
		}
	}
	pterm.Println()

	if len(report.Matches) == 0 {
		pterm.DefaultBasicText.Println("No matches found.")
		return
	}

	tableData := pterm.TableData{{"SEQ", "PATTERN", "LINES", "INDEXES"}}
	for _, m := range report.Matches {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", m.Seq),
			m.Pattern,
			fmt.Sprintf("%d:%d - %d:%d", m.Fragment.Starting.Line, m.Fragment.Starting.Pos, m.Fragment.Ending.Line, m.Fragment.Ending.Pos),
			fmt.Sprintf("[%d, %d)", m.Fragment.Starting.Index, m.Fragment.Ending.Index),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
