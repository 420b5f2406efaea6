package testing

import (
	"grimworks/quartermaster/internal/config"
)

// DefaultTestConfig returns a minimal configuration for testing
func DefaultTestConfig() *config.Configuration {
	return &config.Configuration{
		Server: &config.ServerConfig{
			Nick:    "testqm",
			Server:  "bridge.test.local",
			Port:    6667,
			Channel: "#test",
			SSL:     false,
		},
		Help: &config.HelpConfig{
			CommandDescription: "Additional information about the server and commands",
			HelpText:           []string{"Welcome, <PLAYER>!"},
			ListHeader:         "Available commands:",
			NoRights:           "You don't have permission to perform this action.",
			NoCommands:         "No such command. Try /help for the full list.",
		},
		Access: &config.AccessConfig{
			Admins: []string{},
		},
		Bot: &config.BotConfig{
			Verbose: false,
		},
	}
}
