package help

import (
	"strings"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/chat"
	"grimworks/quartermaster/internal/command"
	"grimworks/quartermaster/internal/config"
)

// Handler answers the help chat command: the full access-filtered
// listing with no arguments, or one command's detail line with one.
type Handler struct {
	registry  *command.Registry
	evaluator *access.Evaluator
}

func NewHandler(registry *command.Registry, evaluator *access.Evaluator) *Handler {
	return &Handler{registry: registry, evaluator: evaluator}
}

func (h *Handler) Name() string { return "help" }

// Description returns the configured override or the stock text.
func (h *Handler) Description(cfg *config.Configuration) string {
	if cfg.Help.CommandDescription != "" {
		return cfg.Help.CommandDescription
	}
	return "Additional information about the server and commands"
}

// Execute handles one invocation. It never propagates a failure to the
// host dispatcher: an unexpected failure degrades to the fallback
// message instead of crashing the invocation.
func (h *Handler) Execute(ctx chat.Context) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ctx.GetLogger().Warnw("Help command degraded", "reason", r)
		defer func() { _ = recover() }()
		ctx.SendLine(ctx.GetConfig().Help.NoCommands)
	}()

	caller := ctx.Caller()
	if caller == nil {
		// Only players get help; console invocations are a no-op
		return
	}

	cfg := ctx.GetConfig()
	for _, line := range cfg.Help.HelpText {
		ctx.SendLine(FormatLine(line, caller.Name()))
	}

	args := ctx.GetArgs()
	if len(args) < 2 {
		h.sendListing(ctx, caller)
		return
	}
	h.sendDetail(ctx, caller, strings.ToLower(args[1]))
}

func (h *Handler) sendListing(ctx chat.Context, caller chat.Caller) {
	cfg := ctx.GetConfig()
	ctx.SendLine(FormatLine(cfg.Help.ListHeader, caller.Name()))

	level := caller.Level()
	var names []string
	for _, desc := range h.registry.Catalog().All() {
		if !h.evaluator.CanSee(desc.Requires, level) {
			continue
		}
		names = append(names, desc.Name)
	}
	ctx.SendLine(FormatListing(names))
}

func (h *Handler) sendDetail(ctx chat.Context, caller chat.Caller, name string) {
	cfg := ctx.GetConfig()

	desc, ok := h.registry.Catalog().Lookup(name)
	if !ok {
		ctx.SendLine(cfg.Help.NoCommands)
		return
	}
	if !h.evaluator.CanSee(desc.Requires, caller.Level()) {
		ctx.SendLine(cfg.Help.NoRights)
		return
	}
	ctx.SendLine(FormatDetail(desc.Name, desc.Help()))
}
