package gateway

import (
	"fmt"
	"strings"

	"github.com/mazznoer/colorgrad"
)

// GetBanner returns a colorized ASCII art banner
func GetBanner(version string) string {
	banner := `
  __ _  _   _   __ _  _ __  | |_   ___  _ __  _ __ ___    __ _  ___ | |_   ___  _ __
 / _' || | | | / _' || '__| | __| / _ \| '__|| '_ ' _ \  / _' |/ __|| __| / _ \| '__|
| (_| || |_| || (_| || |    | |_ |  __/| |   | | | | | || (_| |\__ \| |_ |  __/| |
 \__, | \__,_| \__,_||_|     \__| \___||_|   |_| |_| |_| \__,_||___/ \__| \___||_|
    |_|  every  hold  inventoried  and  every  hand  on  the  manifest  [v` + version + `]
`
	grad, _ := colorgrad.NewGradient().
		HtmlColors("#b5651dff", "#fdf0d5ff").
		Build()

	lines := strings.Split(banner, "\n")

	// Find max line length for gradient spread
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	colors := grad.Colors(uint(maxLen))
	var coloredBanner strings.Builder

	for _, line := range lines {
		for i, ch := range line {
			r, g, b, _ := colors[i].RGBA255()
			coloredBanner.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c", r, g, b, ch))
		}
		coloredBanner.WriteString("\x1b[0m\n")
	}

	return coloredBanner.String()
}
