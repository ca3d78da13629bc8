package patterns

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/gomatch/gomatch/common"
	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

const (
	jsonExt = "json"
	yamlExt = "yaml"
)

// Список возможных команд.
const (
	ListCommand    common.Command = "list"
	GetCommand     common.Command = "get"
	CreateCommand  common.Command = "new"
	UpdateCommand  common.Command = "set"
	DeleteCommand  common.Command = "rm"
	DiagramCommand common.Command = "diagram"
)

// HandlePatterns обрабатывает вызов patterns.
func HandlePatterns(rawArgs []string) {
	if len(rawArgs) < 2 {
		pterm.Error.Printfln("Expected COMMAND, run 'gomatch %s help' for more information", matchclient.MatchNodeAddress)
		return
	}
	args := rawArgs[1:]

	var commandHelper common.CommandHelper
	switch common.Command(args[0]) {
	case ListCommand:
		commandHelper = NewListCommandHelper()
	case GetCommand:
		commandHelper = NewGetCommandHelper()
	case CreateCommand:
		commandHelper = NewCreateCommandHelper()
	case UpdateCommand:
		commandHelper = NewUpdateCommandHelper()
	case DeleteCommand:
		commandHelper = NewDeleteCommandHelper()
	case DiagramCommand:
		commandHelper = NewDiagramCommandHelper()
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
