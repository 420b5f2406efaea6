package testing

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/chat"
	"grimworks/quartermaster/internal/config"
)

// MockChatContext implements chat.Context for testing
type MockChatContext struct {
	context.Context

	// Configurable return values
	CallerName  string
	CallerLevel access.Level
	NoCaller    bool
	Command     string
	Args        []string

	// Recorded calls (for assertions)
	Lines []string

	cfg    *config.Configuration
	logger *zap.SugaredLogger
}

type mockCaller struct {
	name  string
	level access.Level
}

func (c mockCaller) Name() string        { return c.name }
func (c mockCaller) Level() access.Level { return c.level }

// Verify MockChatContext implements chat.Context
var _ chat.Context = (*MockChatContext)(nil)

// NewMockContext creates a new MockChatContext with sensible defaults
func NewMockContext() *MockChatContext {
	return &MockChatContext{
		Context:     context.Background(),
		CallerName:  "testplayer",
		CallerLevel: access.DefaultTable().Lowest(),
		Args:        []string{},
		Lines:       []string{},
		cfg:         DefaultTestConfig(),
		logger:      zap.NewNop().Sugar(),
	}
}

// Builder methods for fluent test setup

// WithCaller sets the caller's display name
func (m *MockChatContext) WithCaller(name string) *MockChatContext {
	m.CallerName = name
	return m
}

// WithLevel sets the caller's access level
func (m *MockChatContext) WithLevel(level access.Level) *MockChatContext {
	m.CallerLevel = level
	return m
}

// WithoutCaller marks the invocation as console/server-originated
func (m *MockChatContext) WithoutCaller() *MockChatContext {
	m.NoCaller = true
	return m
}

// WithArgs sets the parsed arguments
func (m *MockChatContext) WithArgs(args ...string) *MockChatContext {
	m.Args = args
	if len(args) > 0 {
		m.Command = strings.ToLower(args[0])
	}
	return m
}

// WithConfig sets the configuration
func (m *MockChatContext) WithConfig(cfg *config.Configuration) *MockChatContext {
	m.cfg = cfg
	return m
}

// chat.Context methods

func (m *MockChatContext) Caller() chat.Caller {
	if m.NoCaller {
		return nil
	}
	return mockCaller{name: m.CallerName, level: m.CallerLevel}
}

func (m *MockChatContext) GetCommand() string {
	return m.Command
}

func (m *MockChatContext) GetArgs() []string {
	return m.Args
}

func (m *MockChatContext) SendLine(line string) {
	m.Lines = append(m.Lines, line)
}

func (m *MockChatContext) GetConfig() *config.Configuration {
	return m.cfg
}

func (m *MockChatContext) GetLogger() *zap.SugaredLogger {
	return m.logger
}

// Assertion helpers

// HasLine checks if any sent line contains the given substring
func (m *MockChatContext) HasLine(substring string) bool {
	for _, l := range m.Lines {
		if strings.Contains(l, substring) {
			return true
		}
	}
	return false
}

// LastLine returns the last sent line, or empty string if none
func (m *MockChatContext) LastLine() string {
	if len(m.Lines) == 0 {
		return ""
	}
	return m.Lines[len(m.Lines)-1]
}

// LineCount returns the number of sent lines
func (m *MockChatContext) LineCount() int {
	return len(m.Lines)
}
