package ping

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/gomatch/gomatch/matchclient"
)

// HandlePing проверяет доступность узла и печатает его состояние.
func HandlePing() {
	loadSpinner, _ := pterm.DefaultSpinner.Start("Pinging node...")
	state, err := matchclient.MatchNode.Ping()
	if err != nil {
		loadSpinner.Fail("Node is not available: ", err)
		return
	}
	loadSpinner.Success("Node is alive!")
	pterm.Println()

	pterm.DefaultBasicText.Printfln("Known patterns: %d", state.Patterns)
	pterm.DefaultBasicText.Printfln("Journal size: %d", state.JournalSize)
}
