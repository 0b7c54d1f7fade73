package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SessionInvalidated(t *testing.T) {
	b := New()

	var got []string
	handler := func(reason string) { got = append(got, reason) }
	require.NoError(t, b.SubscribeSessionInvalidated(handler))

	b.PublishSessionInvalidated("token expired")
	b.PublishSessionInvalidated("401")

	assert.Equal(t, []string{"token expired", "401"}, got)

	require.NoError(t, b.UnsubscribeSessionInvalidated(handler))
	b.PublishSessionInvalidated("ignored")
	assert.Len(t, got, 2)
}
