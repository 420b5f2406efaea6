package help

import (
	"strings"

	"grimworks/quartermaster/internal/chat"
)

// noDescription is the literal fallback for commands without help text.
const noDescription = "No description"

// FormatLine substitutes the caller-name and whitespace placeholders
// into a template. Pure and deterministic.
func FormatLine(line, playerName string) string {
	line = strings.ReplaceAll(line, chat.PlayerPlaceholder, playerName)
	return strings.ReplaceAll(line, chat.SpacePlaceholder, chat.SpaceSymbol)
}

func listingEntry(name string) string {
	return FormatLine(chat.CommandColor+" /"+name+" "+chat.TextColor+" , "+chat.SpacePlaceholder+" "+chat.SpacePlaceholder, "")
}

func listingSeparator() string {
	return FormatLine(" "+chat.TextColor+" , "+chat.SpacePlaceholder+" "+chat.SpacePlaceholder, "")
}

// FormatListing renders the visible command names as one separated line,
// stripping the trailing separator from a non-trivial listing.
func FormatListing(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(listingEntry(name))
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-len(listingSeparator())]
	}
	return s
}

// FormatDetail renders one command's help line, falling back to
// "No description" for empty help text.
func FormatDetail(name, helpText string) string {
	if helpText == "" {
		helpText = noDescription
	}
	return FormatLine(chat.CommandColor+" /"+name+" "+chat.TextColor+" "+chat.SpacePlaceholder+" - ", "") + helpText
}
