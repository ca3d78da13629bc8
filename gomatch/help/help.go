package help

import "github.com/pterm/pterm"

// HandleHelp выводит сообщение с помощью.
func HandleHelp() {
	pterm.DisableColor()
	pterm.DefaultBasicText.Printfln("Usage: gomatch ADDRESS CATERGORY COMMAND [OPTIONS]")
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Pattern matching service tool")
	pterm.Println()
	pterm.Println("ADDRESS means address of match_node in format <host>[:port]")

	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"CATEGORY", "COMMAND", "Description"},
		{"ping", "", "Checks that node is alive and prints its state"},
		{"patterns", "", "Managing a list of patterns"},
		{"", "list", "Returns list of available patterns"},
		{"", "get", "Returns description of specified pattern"},
		{"", "new", "Creates new pattern with given name, type and word"},
		{"", "set", "Replaces specified pattern"},
		{"", "rm", "Removes specified pattern"},
		{"", "diagram", "Saves SVG diagram of pattern automaton"},
		{"documents", "", "Managing a list of documents"},
		{"", "list", "Returns list of available documents"},
		{"", "get", "Returns text of specified document"},
		{"", "new", "Loads document for use when running scans"},
		{"", "set", "Replaces specified document"},
		{"", "rm", "Removes document"},
		{"scans", "", "Running scans"},
		{"", "run", "Scans given text or saved document and prints report"},
		{"", "watch", "Scans text from stdin line by line, prints matches as they close"},
		{"matches", "", "Reading journal of matches"},
		{"", "list", "Returns oldest journaled matches"},
		{"", "ack", "Confirms matches up to given border and removes them"},
		{"help", "", "Prints help message"},
	}).Render()
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Use 'gomatch ADDRESS CATERGORY COMMAND --help' to see command [OPTIONS]")

	pterm.EnableColor()
}
