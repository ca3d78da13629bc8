package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/GDVFox/gomatch/gomatch/about"
	"github.com/GDVFox/gomatch/gomatch/documents"
	"github.com/GDVFox/gomatch/gomatch/help"
	"github.com/GDVFox/gomatch/gomatch/matchclient"
	"github.com/GDVFox/gomatch/gomatch/matches"
	"github.com/GDVFox/gomatch/gomatch/patterns"
	"github.com/GDVFox/gomatch/gomatch/ping"
	"github.com/GDVFox/gomatch/gomatch/scans"
)

// Category категория команд
type Category string

// Список возможных категорий.
const (
	PingCategory      Category = "ping"
	PatternsCategory  Category = "patterns"
	DocumentsCategory Category = "documents"
	ScansCategory     Category = "scans"
	MatchesCategory   Category = "matches"
	HelpCategory      Category = "help"
	AboutCategory     Category = "about"
)

func main() {
	pterm.DisableDebugMessages()
	pterm.Error.ShowLineNumber = false

	if len(os.Args) < 2 {
		help.HandleHelp()
		return
	}
	// Для категорий help и about вводить адрес match_node необязательно.
	switch Category(os.Args[1]) {
	case HelpCategory:
		help.HandleHelp()
		return
	case AboutCategory:
		about.HandleAbout()
		return
	default:
	}

	// С этого момента помимо адреса должна быть указана категория
	if len(os.Args) < 3 {
		help.HandleHelp()
		return
	}

	cfg := &matchclient.MatchNodeClientConfig{Address: os.Args[1]}
	matchclient.OpenMatchNodeClient(cfg)

	args := os.Args[2:]
	switch Category(args[0]) {
	case PingCategory:
		ping.HandlePing()
	case PatternsCategory:
		patterns.HandlePatterns(args)
	case DocumentsCategory:
		documents.HandleDocuments(args)
	case ScansCategory:
		scans.HandleScans(args)
	case MatchesCategory:
		matches.HandleMatches(args)
	case HelpCategory:
		help.HandleHelp()
	case AboutCategory:
		about.HandleAbout()
	default:
		pterm.Error.Printfln("Unknown category '%s', run 'gomatch %s help' for more information", args[0], matchclient.MatchNodeAddress)
	}
}
