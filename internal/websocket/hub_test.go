package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmovie-be/internal/pkg/logger"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)
	return hub
}

func TestHub_SendToSessionReachesOnlyThatSession(t *testing.T) {
	hub := startHub(t)
	mine := &Client{Hub: hub, SessionID: "a", Send: make(chan []byte, 4)}
	other := &Client{Hub: hub, SessionID: "b", Send: make(chan []byte, 4)}
	hub.Register(mine)
	hub.Register(other)
	require.Eventually(t, func() bool { return hub.ClientCount("a") == 1 && hub.ClientCount("b") == 1 }, time.Second, 5*time.Millisecond)

	err := hub.SendToSession(context.Background(), "a", "poster_update", map[string]string{"poster_url": "https://image.tmdb.org/x.jpg"})
	require.NoError(t, err)

	select {
	case frame := <-mine.Send:
		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(frame, &msg))
		assert.Equal(t, "poster_update", msg.Type)
		assert.Equal(t, "https://image.tmdb.org/x.jpg", msg.Data["poster_url"])
	case <-time.After(time.Second):
		t.Fatal("expected a frame")
	}
	assert.Empty(t, other.Send)
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := startHub(t)
	slow := &Client{Hub: hub, SessionID: "slow", Send: make(chan []byte, 1)}
	hub.Register(slow)
	require.Eventually(t, func() bool { return hub.ClientCount("slow") == 1 }, time.Second, 5*time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, hub.SendToSession(context.Background(), "slow", "ping", i))
	}

	assert.Len(t, slow.Send, 1)
	assert.Equal(t, 1, hub.ClientCount("slow"), "slow clients stay registered")
}

func TestHub_UnregisterClosesSendOnce(t *testing.T) {
	hub := startHub(t)
	c := &Client{Hub: hub, SessionID: "s", Send: make(chan []byte, 1)}
	hub.Register(c)
	hub.Unregister(c)
	hub.Unregister(c)

	require.Eventually(t, func() bool { return hub.ClientCount("s") == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)
}

func TestHub_StoppedHubDoesNotBlockClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, logger.NewNopLogger())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := &Client{Hub: hub, SessionID: "s", Send: make(chan []byte, 1)}
	require.True(t, hub.Register(c))
	cancel()
	<-stopped

	returned := make(chan bool, 1)
	go func() {
		hub.Unregister(c)
		returned <- hub.Register(&Client{Hub: hub, SessionID: "late", Send: make(chan []byte, 1)})
	}()

	select {
	case accepted := <-returned:
		assert.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("Unregister or Register blocked after the hub stopped")
	}
}
