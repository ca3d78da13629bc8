package scans

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/gomatch/gomatch/common"
	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

var (
	acceptedPrinter = pterm.PrefixPrinter{
		MessageStyle: &pterm.ThemeDefault.DescriptionMessageStyle,
		Prefix: pterm.Prefix{
			Style: &pterm.ThemeDefault.SuccessPrefixStyle,
			Text:  "ACCEPTED",
		},
	}
	rejectedPrinter = pterm.PrefixPrinter{
		MessageStyle: &pterm.ThemeDefault.DescriptionMessageStyle,
		Prefix: pterm.Prefix{
			Style: &pterm.ThemeDefault.WarningPrefixStyle,
			Text:  "REJECTED",
		},
	}
	matchPrinter = pterm.PrefixPrinter{
		MessageStyle: &pterm.ThemeDefault.DescriptionMessageStyle,
		Prefix: pterm.Prefix{
			Style: &pterm.ThemeDefault.SuccessPrefixStyle,
			Text:  "MATCH",
		},
	}
)

// Список возможных команд.
const (
	RunCommand   common.Command = "run"
	WatchCommand common.Command = "watch"
)

// HandleScans обрабатывает вызов scans.
func HandleScans(rawArgs []string) {
	if len(rawArgs) < 2 {
		pterm.Error.Printfln("Expected COMMAND, run 'gomatch %s help' for more information", matchclient.MatchNodeAddress)
		return
	}
	args := rawArgs[1:]

	var commandHelper common.CommandHelper
	switch common.Command(args[0]) {
	case RunCommand:
		commandHelper = NewRunCommandHelper()
	case WatchCommand:
		commandHelper = NewWatchCommandHelper()
	default:
		pterm.Error.Printfln("Unknown command '%s', run 'gomatch %s help' for more information", args[0], matchclient.MatchNodeAddress)
		return
	}

	if err := commandHelper.Init(args); err != nil {
		pterm.Error.Printfln("Can not parse command flags: %s", err)
		pterm.Println()
		commandHelper.PrintHelp()
		return
	}
	commandHelper.Run()
}
