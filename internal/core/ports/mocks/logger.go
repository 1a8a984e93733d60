package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
)

// Logger is a mock of ports.Logger. Variadic arguments are recorded as a
// single []any so expectations do not depend on the argument count.
type Logger struct {
	mock.Mock
}

// NewLogger returns a Logger that accepts every call.
func NewLogger() *Logger {
	m := new(Logger)
	m.On("Debugf", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("Warnf", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("WithFields", mock.Anything).Maybe().Return(m)
	return m
}

func (m *Logger) Debugf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Infof(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Warnf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Errorf(ctx context.Context, err error, format string, args ...any) {
	m.Called(ctx, err, format, args)
}

func (m *Logger) WithFields(fields map[string]any) ports.Logger {
	ret := m.Called(fields)
	return ret.Get(0).(ports.Logger)
}

// ErrorfCalls returns the format strings of every Errorf call.
func (m *Logger) ErrorfCalls() []string {
	var out []string
	for _, c := range m.Calls {
		if c.Method == "Errorf" {
			out = append(out, c.Arguments.String(2))
		}
	}
	return out
}
