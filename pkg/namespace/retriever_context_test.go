package namespace_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/geyuegui/RIDE/pkg/namespace"
)

func TestRetrieverContextVisit(t *testing.T) {
	ctx := namespace.NewRetrieverContext(zerolog.Nop())

	require.True(t, ctx.Visit("/w/a.robot"))
	require.False(t, ctx.Visit("/w/a.robot"))
	require.False(t, ctx.Visit("/w/./a.robot"), "equivalent paths count as one visit")
	require.True(t, ctx.Visit("/w/b.robot"))
}

func TestRetrieverContextAllowRevisit(t *testing.T) {
	ctx := namespace.NewRetrieverContext(zerolog.Nop())
	ctx.Vars.Set("${X}", "1", "test")
	require.True(t, ctx.Visit("/w/a.robot"))

	ctx.AllowGoingThroughResourcesAgain()

	require.True(t, ctx.Visit("/w/a.robot"), "visited set must be cleared")
	require.Equal(t, "1", ctx.Vars.ReplaceVariables("${X}"), "variable environment must be retained")
}
