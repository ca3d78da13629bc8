package about

import "github.com/pterm/pterm"

// HandleAbout выводит сообщение с помощью.
func HandleAbout() {
	title, _ := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("Go", pterm.NewStyle(pterm.FgLightMagenta)),
		pterm.NewLettersFromStringWithStyle("Match", pterm.NewStyle(pterm.FgCyan))).
		Srender()

	pterm.DefaultCenter.Println(title)
	pterm.DefaultCenter.WithCenterEachLineSeparately().Println(
		"Pattern matching service tool\n" +
			"GitHub repo: 'https://github.com/GDVFox/gomatch'\n" +
			"2022")
}
