package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{name: "debug", level: "debug", want: zapcore.DebugLevel},
		{name: "warn", level: "warn", want: zapcore.WarnLevel},
		{name: "empty defaults to info", level: "", want: zapcore.InfoLevel},
		{name: "unknown defaults to info", level: "loud", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestGet_ReturnsSameLogger(t *testing.T) {
	assert.Same(t, Get(), Get())
}

func TestFromCtx(t *testing.T) {
	l := zap.NewNop()
	ctx := WithCtx(context.Background(), l)
	assert.Same(t, l, FromCtx(ctx))

	// storing the same logger again does not wrap the context
	assert.Equal(t, ctx, WithCtx(ctx, l))
}

func TestFromCtx_FallsBackToProcessLogger(t *testing.T) {
	assert.Same(t, Get(), FromCtx(context.Background()))
}
