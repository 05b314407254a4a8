package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cobragpt/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_ChatRequiresLogin(t *testing.T) {
	capturePrintln(t)
	a, _ := newTestApp(t, "")

	assert.ErrorIs(t, a.Chat(context.Background(), "hi"), errNotLoggedIn)
	assert.ErrorIs(t, a.History(context.Background()), errNotLoggedIn)
}

func TestApp_ChatAndHistory(t *testing.T) {
	lines := capturePrintln(t)
	a, _ := newTestApp(t, "")
	ctx := context.Background()
	_, err := a.session.Login(ctx, "u@x.com", "secret1")
	require.NoError(t, err)

	require.ErrorIs(t, a.Chat(ctx, "   "), services.ErrEmptyMessage)
	require.NoError(t, a.Chat(ctx, "hello"))
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "assistant: ")

	*lines = nil
	require.NoError(t, a.History(ctx))
	require.Len(t, *lines, 3)
	assert.True(t, strings.HasSuffix((*lines)[1], "user: hello"))
}
