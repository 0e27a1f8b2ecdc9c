package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenahq/arena/internal/testutil"
)

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub("t-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	hub.BroadcastEvent("score", `{"match_id":"m-1"}`)

	select {
	case msg := <-client.send:
		assert.Contains(t, string(msg), "event: score")
		assert.Contains(t, string(msg), `data: {"match_id":"m-1"}`)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub("t-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestHubUnregisterReturnsAfterClose(t *testing.T) {
	hub := NewHub("t-1", testutil.NopLogger())
	go hub.Run()

	client := NewClient(hub)
	hub.Register(client)

	// Closing with a live viewer: the event loop exits, and the viewer's
	// deferred Unregister must still return instead of leaking
	hub.Close()

	select {
	case _, ok := <-client.send:
		require.False(t, ok, "send channel should be closed on shutdown")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for shutdown to drop the client")
	}

	done := make(chan struct{})
	go func() {
		hub.Unregister(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked on a closed hub")
	}
}

func TestFormatSSEMessageMultiline(t *testing.T) {
	msg := formatSSEMessage("update", "line1\nline2")
	assert.Equal(t, "event: update\ndata: line1\ndata: line2\n\n", string(msg))
}

func TestHubManagerReusesHubPerTournament(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	h1 := manager.GetOrCreateHub("t-1")
	h2 := manager.GetOrCreateHub("t-1")
	other := manager.GetOrCreateHub("t-2")

	require.Same(t, h1, h2)
	assert.NotSame(t, h1, other)

	assert.Same(t, h1, manager.GetHub("t-1"))
	assert.Nil(t, manager.GetHub("t-missing"))

	manager.RemoveHub("t-1")
	assert.Nil(t, manager.GetHub("t-1"))
	manager.RemoveHub("t-2")
}
