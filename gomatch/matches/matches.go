package matches

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/gomatch/gomatch/common"
	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// Список возможных команд.
const (
	ListCommand common.Command = "list"
	AckCommand  common.Command = "ack"
)

// HandleMatches обрабатывает вызов matches.
func HandleMatches(rawArgs []string) {
	if len(rawArgs) < 2 {
		pterm.Error.Printfln("Expected COMMAND, run 'gomatch %s help' for more information", matchclient.MatchNodeAddress)
		return
	}
	args := rawArgs[1:]

	var commandHelper common.CommandHelper
	switch common.Command(args[0]) {
	case ListCommand:
		commandHelper = NewListCommandHelper()
	case AckCommand:
		commandHelper = NewAckCommandHelper()
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
