package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic and must report the disabled level
	l.Info().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_ReturnsIndependentLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)

	scoped := zerolog.Nop()
	ctx := scoped.WithContext(context.Background())
	assert.Equal(t, zerolog.Disabled, FromContext(ctx).GetLevel())
}
