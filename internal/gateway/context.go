package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/lrstanley/girc"
	"go.uber.org/zap"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/chat"
	"grimworks/quartermaster/internal/config"
	"grimworks/quartermaster/internal/core"
)

// One invocation is handled synchronously; the timeout only bounds the
// per-channel lock wait.
const requestTimeout = 30 * time.Second

type player struct {
	name  string
	level access.Level
}

func (p player) Name() string        { return p.name }
func (p player) Level() access.Level { return p.level }

// ChatContext adapts one bridge message to chat.Context.
type ChatContext struct {
	context.Context
	cfg    *config.Configuration
	client *girc.Client
	event  *girc.Event
	caller chat.Caller
	args   []string
	logger *zap.SugaredLogger
}

var _ chat.Context = (*ChatContext)(nil)

func (g *Gateway) NewChatContext(parent context.Context, e *girc.Event) (chat.Context, context.CancelFunc) {
	timedctx, cancel := context.WithTimeout(parent, requestTimeout)

	requestID := generateRequestID()
	logger := core.WithChatContext(zap.S().With("request_id", requestID), e.Params[0], sourceName(e))

	ctx := &ChatContext{
		Context: timedctx,
		cfg:     g.cfg,
		client:  g.client,
		event:   e,
		args:    strings.Fields(e.Last()),
		logger:  logger,
	}

	if e.Source != nil {
		ctx.caller = player{
			name:  e.Source.Name,
			level: g.resolveLevel(e),
		}
	}

	return ctx, cancel
}

// resolveLevel maps a bridge identity onto the host's access tiers:
// configured admin hostmasks get the admin tier, channel operators
// moderate, everyone else gets the lowest tier.
func (g *Gateway) resolveLevel(e *girc.Event) access.Level {
	hostmask := e.Source.String()
	for _, admin := range g.cfg.Access.Admins {
		if admin == hostmask {
			if l, ok := g.table.Lookup("admin"); ok {
				return l
			}
		}
	}

	if user := g.client.LookupUser(e.Source.Name); user != nil && user.Perms != nil {
		if perms, ok := user.Perms.Lookup(e.Params[0]); ok && perms.IsAdmin() {
			if l, ok := g.table.Lookup("moderator"); ok {
				return l
			}
		}
	}

	return g.table.Lowest()
}

func (c *ChatContext) Caller() chat.Caller {
	return c.caller
}

func (c *ChatContext) GetCommand() string {
	if len(c.args) == 0 {
		return ""
	}
	return strings.ToLower(c.args[0])
}

func (c *ChatContext) GetArgs() []string {
	return c.args
}

func (c *ChatContext) SendLine(line string) {
	c.client.Cmd.Reply(*c.event, line)
}

func (c *ChatContext) GetConfig() *config.Configuration {
	return c.cfg
}

func (c *ChatContext) GetLogger() *zap.SugaredLogger {
	return c.logger
}

func sourceName(e *girc.Event) string {
	if e.Source == nil {
		return ""
	}
	return e.Source.Name
}

// generateRequestID creates a unique 8-character request ID for correlation
func generateRequestID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
