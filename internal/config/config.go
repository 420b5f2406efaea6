package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Server *ServerConfig
	Help   *HelpConfig
	Access *AccessConfig
	Bot    *BotConfig
}

type ServerConfig struct {
	Nick        string
	Server      string
	Port        int
	Channel     string
	SSL         bool
	TLSInsecure bool
	SASLNick    string
	SASLPass    string
}

// HelpConfig carries the human-authored strings the help command emits.
type HelpConfig struct {
	CommandDescription string
	HelpText           []string
	ListHeader         string
	NoRights           string
	NoCommands         string
}

type AccessConfig struct {
	Levels      []string
	Admins      []string
	ManifestDir string
}

type BotConfig struct {
	Verbose bool
}

// YamlSource implements cli.ValueSource for a map loaded from YAML
type YamlSource struct {
	data map[string]any
	key  string
}

func (y *YamlSource) Lookup() (string, bool) {
	if v, ok := y.data[y.key]; ok {
		// Handle slices by joining with comma
		if slice, ok := v.([]any); ok {
			var strs []string
			for _, item := range slice {
				strs = append(strs, fmt.Sprintf("%v", item))
			}
			return strings.Join(strs, ","), true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func (y *YamlSource) String() string   { return "yaml" }
func (y *YamlSource) GoString() string { return "yaml" }

func GetFlags() []cli.Flag {
	// Pre-parse config path
	configPath := getConfigPath()
	var configData map[string]any
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			_ = yaml.Unmarshal(data, &configData)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", configPath, err)
		}
	}

	// Helper to create sources: EnvVar > YAML > Default
	src := func(key string, env ...string) cli.ValueSourceChain {
		chain := cli.ValueSourceChain{}
		for _, e := range env {
			chain.Chain = append(chain.Chain, cli.EnvVar(e))
		}
		if configData != nil {
			chain.Chain = append(chain.Chain, &YamlSource{data: configData, key: key})
		}
		return chain
	}

	return []cli.Flag{
		// Config file
		&cli.StringFlag{Name: "config", Aliases: []string{"b"}, Usage: "use the named configuration file", Sources: cli.EnvVars("QUARTERMASTER_CONFIG")},

		// Bridge Client Configuration
		&cli.StringFlag{Name: "nick", Aliases: []string{"n"}, Value: "quartermaster", Usage: "nickname on the chat bridge", Sources: src("nick", "QUARTERMASTER_NICK")},
		&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Value: "localhost", Usage: "chat bridge server address", Sources: src("server", "QUARTERMASTER_SERVER")},
		&cli.BoolFlag{Name: "tls", Aliases: []string{"e"}, Usage: "enable TLS for the bridge connection", Sources: src("tls", "QUARTERMASTER_TLS")},
		&cli.BoolFlag{Name: "tlsinsecure", Usage: "skip TLS certificate verification", Sources: src("tlsinsecure", "QUARTERMASTER_TLSINSECURE")},
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 6667, Usage: "chat bridge server port", Sources: src("port", "QUARTERMASTER_PORT")},
		&cli.StringFlag{Name: "channel", Aliases: []string{"c"}, Usage: "bridge channel carrying the server chat", Sources: src("channel", "QUARTERMASTER_CHANNEL")},
		&cli.StringFlag{Name: "saslnick", Usage: "nick used for SASL", Sources: src("saslnick", "QUARTERMASTER_SASLNICK")},
		&cli.StringFlag{Name: "saslpass", Usage: "password for SASL plain", Sources: src("saslpass", "QUARTERMASTER_SASLPASS")},

		// Access Configuration
		&cli.StringSliceFlag{Name: "levels", Usage: "access tiers as name:priority entries, lowest first", Sources: src("levels", "QUARTERMASTER_LEVELS")},
		&cli.StringSliceFlag{Name: "admins", Aliases: []string{"A"}, Usage: "comma-separated list of hostmasks granted the admin tier", Sources: src("admins", "QUARTERMASTER_ADMINS")},
		&cli.StringFlag{Name: "manifestdir", Usage: "directory of extension command manifests to load at startup", Sources: src("manifestdir", "QUARTERMASTER_MANIFESTDIR")},

		// Help Text Configuration
		&cli.StringFlag{Name: "commanddescription", Usage: "override for the help command's own description", Sources: src("commanddescription", "QUARTERMASTER_COMMANDDESCRIPTION")},
		&cli.StringSliceFlag{Name: "helptext", Value: []string{"Welcome, <PLAYER>! This server speaks /help."}, Usage: "header lines sent before any help output, <PLAYER> is substituted", Sources: src("helptext", "QUARTERMASTER_HELPTEXT")},
		&cli.StringFlag{Name: "listheader", Value: "Available commands:", Usage: "line sent before the command listing", Sources: src("listheader", "QUARTERMASTER_LISTHEADER")},
		&cli.StringFlag{Name: "norights", Value: "You don't have permission to perform this action.", Usage: "message for a command the caller cannot use", Sources: src("norights", "QUARTERMASTER_NORIGHTS")},
		&cli.StringFlag{Name: "nocommands", Value: "No such command. Try /help for the full list.", Usage: "message for an unknown command name", Sources: src("nocommands", "QUARTERMASTER_NOCOMMANDS")},

		// Bot Configuration
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "enable verbose logging", Sources: src("verbose", "QUARTERMASTER_VERBOSE")},
	}
}

func getConfigPath() string {
	// Check env first
	if v := os.Getenv("QUARTERMASTER_CONFIG"); v != "" {
		return v
	}
	// Check args
	for i, arg := range os.Args {
		if arg == "--config" || arg == "-b" {
			if i+1 < len(os.Args) {
				return os.Args[i+1]
			}
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func NewConfiguration(c *cli.Command) *Configuration {
	if c.IsSet("config") {
		zap.S().Infow("Using config file", "path", c.String("config"))
	}

	return &Configuration{
		Server: &ServerConfig{
			Nick:        c.String("nick"),
			Server:      c.String("server"),
			Port:        c.Int("port"),
			Channel:     c.String("channel"),
			SSL:         c.Bool("tls"),
			TLSInsecure: c.Bool("tlsinsecure"),
			SASLNick:    c.String("saslnick"),
			SASLPass:    c.String("saslpass"),
		},
		Help: &HelpConfig{
			CommandDescription: c.String("commanddescription"),
			HelpText:           c.StringSlice("helptext"),
			ListHeader:         c.String("listheader"),
			NoRights:           c.String("norights"),
			NoCommands:         c.String("nocommands"),
		},
		Access: &AccessConfig{
			Levels:      c.StringSlice("levels"),
			Admins:      c.StringSlice("admins"),
			ManifestDir: c.String("manifestdir"),
		},
		Bot: &BotConfig{
			Verbose: c.Bool("verbose"),
		},
	}
}

func (c *Configuration) PrintConfig() {
	fmt.Printf("nick: %s\n", c.Server.Nick)
	fmt.Printf("server: %s\n", c.Server.Server)
	fmt.Printf("port: %d\n", c.Server.Port)
	fmt.Printf("channel: %s\n", c.Server.Channel)
	fmt.Printf("tls: %t\n", c.Server.SSL)
	fmt.Printf("tlsinsecure: %t\n", c.Server.TLSInsecure)
	fmt.Printf("levels: %v\n", c.Access.Levels)
	fmt.Printf("admins: %v\n", c.Access.Admins)
	fmt.Printf("manifestdir: %s\n", c.Access.ManifestDir)
	fmt.Printf("helptext: %v\n", c.Help.HelpText)
	fmt.Printf("listheader: %s\n", c.Help.ListHeader)
	fmt.Printf("norights: %s\n", c.Help.NoRights)
	fmt.Printf("nocommands: %s\n", c.Help.NoCommands)
	fmt.Printf("verbose: %t\n", c.Bot.Verbose)
}
