package chat

import (
	"context"

	"go.uber.org/zap"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/config"
)

// Caller is the player invoking a chat command.
type Caller interface {
	Name() string
	Level() access.Level
}

// Context carries one chat invocation through command handling.
type Context interface {
	context.Context

	// Caller returns nil when the invocation did not originate from a
	// player (console or server-originated lines).
	Caller() Caller
	GetCommand() string
	GetArgs() []string

	// SendLine delivers one line of text to the caller. Fire and forget;
	// a failed send is the transport's concern.
	SendLine(string)

	GetConfig() *config.Configuration
	GetLogger() *zap.SugaredLogger
}
