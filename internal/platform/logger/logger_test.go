package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	ctx := context.Background()

	l := New("debug")
	require.NotNil(t, l)
	assert.True(t, l.Enabled(ctx, slog.LevelDebug))

	l = New("error")
	assert.False(t, l.Enabled(ctx, slog.LevelWarn))
	assert.True(t, l.Enabled(ctx, slog.LevelError))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := New("verbose")
	ctx := context.Background()
	assert.False(t, l.Enabled(ctx, slog.LevelDebug))
	assert.True(t, l.Enabled(ctx, slog.LevelInfo))
}
