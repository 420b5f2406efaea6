package gateway

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lrstanley/girc"
	"go.uber.org/zap"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/command"
	"grimworks/quartermaster/internal/config"
	"grimworks/quartermaster/internal/core"
	"grimworks/quartermaster/internal/extension"
	"grimworks/quartermaster/internal/help"
)

// Gateway hosts the help facility on the server's chat bridge.
type Gateway struct {
	cfg      *config.Configuration
	table    *access.Table
	ext      *extension.Registry
	registry *command.Registry
	eval     *access.Evaluator
	help     *help.Handler
	client   *girc.Client
}

func New(cfg *config.Configuration, table *access.Table, ext *extension.Registry) *Gateway {
	registry := command.NewRegistry(Builtins{}, ext)
	eval := access.NewEvaluator(table)
	return &Gateway{
		cfg:      cfg,
		table:    table,
		ext:      ext,
		registry: registry,
		eval:     eval,
		help:     help.NewHandler(registry, eval),
	}
}

// Registry exposes the command registry so the host can invalidate the
// catalog after an extension reload.
func (g *Gateway) Registry() *command.Registry {
	return g.registry
}

// Run connects to the bridge and serves chat commands until ctx is done.
func (g *Gateway) Run(ctx context.Context) error {
	g.client = girc.New(girc.Config{
		Server:    g.cfg.Server.Server,
		Port:      g.cfg.Server.Port,
		Nick:      g.cfg.Server.Nick,
		User:      "quartermaster",
		Name:      "quartermaster",
		SSL:       g.cfg.Server.SSL,
		TLSConfig: &tls.Config{InsecureSkipVerify: g.cfg.Server.TLSInsecure},
	})

	if g.cfg.Server.SASLNick != "" && g.cfg.Server.SASLPass != "" {
		g.client.Config.SASL = &girc.SASLPlain{
			User: g.cfg.Server.SASLNick,
			Pass: g.cfg.Server.SASLPass,
		}
	}

	go func() {
		<-ctx.Done()
		g.client.Quit("Shutting down...")
		zap.S().Info("Bridge client closed")
	}()

	// SIGHUP rebuilds the catalog so extension commands registered since
	// startup become visible to help.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-ctx.Done():
				signal.Stop(hup)
				return
			case <-hup:
				g.registry.Invalidate()
				zap.S().Infow("Catalog rebuilt", "commands", g.registry.Catalog().Len())
			}
		}
	}()

	g.client.Handlers.AddBg(girc.CONNECTED, func(client *girc.Client, e girc.Event) {
		zap.S().Infof("Joining channel: %s", g.cfg.Server.Channel)
		client.Cmd.Join(g.cfg.Server.Channel)
	})

	g.client.Handlers.AddBg(girc.JOIN, func(client *girc.Client, e girc.Event) {
		if e.Source != nil && e.Source.Name == g.cfg.Server.Nick {
			// Prime the catalog once so the first /help does not pay the
			// build inside a chat callback.
			defer core.LogDuration(zap.S(), "catalog_build", time.Now())
			zap.S().Infow("Catalog ready", "commands", g.registry.Catalog().Len())
		}
	})

	g.client.Handlers.AddBg(girc.PRIVMSG, func(client *girc.Client, e girc.Event) {
		if !strings.HasPrefix(e.Last(), "/") {
			return
		}

		chatctx, cancel := g.NewChatContext(ctx, &e)
		defer cancel()

		channelKey := e.Params[0]
		if !girc.IsValidChannel(channelKey) {
			channelKey = sourceName(&e)
		}
		lock := core.GetRequestLock(channelKey)

		chatctx.GetLogger().Debugf("Acquiring lock for channel '%s'", channelKey)
		if !lock.LockWithContext(chatctx) {
			chatctx.GetLogger().Warnf("Failed to acquire lock for channel '%s' (timeout)", channelKey)
			return
		}
		defer func() {
			chatctx.GetLogger().Debugf("Releasing lock for channel '%s'", channelKey)
			lock.Unlock()
		}()

		chatctx.GetLogger().Infof(">> %s", strings.Join(e.Params[1:], " "))
		if !g.Dispatch(chatctx) {
			chatctx.GetLogger().Debugw("Line left to the server", "command", chatctx.GetCommand())
		}
	})

	// Reconnect loop
	const maxRetries = 5
	for i := range maxRetries {
		if ctx.Err() != nil {
			return nil
		}

		zap.S().Infow("Connecting to bridge",
			"server", g.client.Config.Server,
			"port", g.client.Config.Port,
			"tls", g.client.Config.SSL,
			"sasl", g.client.Config.SASL != nil,
		)

		if err := g.client.Connect(); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			zap.S().Errorw("Connection failed", "error", err)
			zap.S().Infof("Reconnecting in 5 seconds (attempt %d/%d)", i+1, maxRetries)

			select {
			case <-time.After(5 * time.Second):
				continue
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	}

	return fmt.Errorf("failed to connect after %d attempts", maxRetries)
}
