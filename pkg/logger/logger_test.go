package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestFromCtx(t *testing.T) {
	t.Run("no logger in context", func(t *testing.T) {
		assert.Same(t, Get(), FromCtx(context.Background()))
	})

	t.Run("custom logger in context", func(t *testing.T) {
		customLogger := Get().With("run_id", "1234")
		ctx := WithCtx(context.Background(), customLogger)

		assert.Same(t, customLogger, FromCtx(ctx))
	})
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Equal(t, newCtx, WithCtx(newCtx, logger))
}
