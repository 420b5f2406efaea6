package gateway

import (
	"strings"

	"grimworks/quartermaster/internal/chat"
	"grimworks/quartermaster/internal/command"
)

// Dispatch routes one typed chat command. Returns true if the line was
// handled, false if it should be left to the game server itself.
func (g *Gateway) Dispatch(ctx chat.Context) bool {
	raw := ctx.GetCommand()
	if !strings.HasPrefix(raw, "/") {
		return false
	}
	name := strings.TrimPrefix(raw, "/")

	if name == "help" || name == "?" {
		g.help.Execute(ctx)
		return true
	}

	desc, ok := g.registry.Catalog().Lookup(name)
	if !ok {
		return false
	}

	caller := ctx.Caller()
	if caller == nil {
		return false
	}
	if !g.eval.CanSee(desc.Requires, caller.Level()) {
		ctx.SendLine(g.cfg.Help.NoRights)
		return true
	}

	if desc.Source == command.SourceExtension {
		if handler, ok := g.ext.Handler(name); ok {
			handler(ctx)
			return true
		}
	}

	// Builtin commands (and manifest-only extension commands) execute on
	// the game server; the bridge only advertises them.
	ctx.GetLogger().Debugw("Command deferred to server", "command", name, "source", desc.Source.String())
	return false
}
