package chat

import "fmt"

// Markup tokens understood by the game client's chat renderer.
const (
	// PlayerPlaceholder is replaced with the caller's display name.
	PlayerPlaceholder = "<PLAYER>"
	// SpacePlaceholder is replaced with SpaceSymbol before sending.
	SpacePlaceholder = "<SPACE>"
	// SpaceSymbol survives the client's whitespace collapsing where a
	// literal space would not.
	SpaceSymbol = " "
)

// RGB returns a color token in the client's markup, e.g. <RGB:0.4,0.5,0.8>.
func RGB(r, g, b float64) string {
	return fmt.Sprintf("<RGB:%g,%g,%g>", r, g, b)
}

var (
	// CommandColor renders command tokens in the listing and detail lines.
	CommandColor = RGB(0.4, 0.5, 0.8)
	// TextColor resets to the plain chat text color.
	TextColor = RGB(1, 1, 1)
)
