package launcher

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Bold(true)

	okStyle   = bannerStyle.Foreground(lipgloss.Color("10"))
	failStyle = bannerStyle.Foreground(lipgloss.Color("9"))
)

// StartBanner renders the box shown before the scanner is spawned.
func StartBanner(title, entrypoint string) string {
	return bannerStyle.Render(fmt.Sprintf("%s\nlaunching %s", title, entrypoint))
}

// CompletionBanner renders the fixed box shown after the child exits,
// regardless of its outcome. Diagnosis happens in the scanner's own log
// files, not here.
func CompletionBanner(exitCode int) string {
	style := okStyle
	if exitCode != 0 {
		style = failStyle
	}
	return style.Render(fmt.Sprintf(
		"Scanner finished (exit code %d)\nCheck the scanner log files for details", exitCode))
}
