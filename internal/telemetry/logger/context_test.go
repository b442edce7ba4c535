package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	l, buf := newJSON(t, "info")

	FromContext(WithLogger(context.Background(), l)).Info("from context")
	assert.Len(t, entries(t, buf), 1)

	assert.NotNil(t, FromContext(context.Background()), "falls back to Default")
}

func TestSessionID(t *testing.T) {
	ctx := WithSessionID(context.Background(), "01JABCDEF")

	assert.Equal(t, "01JABCDEF", SessionIDFromContext(ctx))
	assert.Empty(t, SessionIDFromContext(context.Background()))
}

func TestL_Fields(t *testing.T) {
	l, buf := newJSON(t, "debug")
	base := WithLogger(context.Background(), l)

	ctx := WithFields(WithSessionID(base, "session-2"), "line", 3)
	assert.Equal(t, ctx, WithFields(ctx), "no args leaves ctx unchanged")

	L(ctx).Debug("operand rejected")
	L(base).Debug("no fields")

	got := entries(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "session-2", got[0][SessionIDField])
	assert.EqualValues(t, 3, got[0]["line"])
	assert.NotContains(t, got[1], SessionIDField)
	assert.NotContains(t, got[1], "line")
}

func TestWithFields_ParentUnchanged(t *testing.T) {
	parent := WithFields(context.Background(), "a", 1)
	child := WithFields(parent, "b", 2)

	assert.Equal(t, []any{"a", 1}, fieldsFromContext(parent))
	assert.Equal(t, []any{"a", 1, "b", 2}, fieldsFromContext(child))
}
