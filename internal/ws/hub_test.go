package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})
	return hub
}

func receive(t *testing.T, ch <-chan []byte) envelope {
	t.Helper()
	select {
	case raw, ok := <-ch:
		require.True(t, ok, "канал закрыт")
		var env envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("событие не доставлено")
		return envelope{}
	}
}

func TestHub_PublishReachesAllClientsOfUser(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	first := &Client{hub: hub, userID: userID, send: make(chan []byte, 4)}
	second := &Client{hub: hub, userID: userID, send: make(chan []byte, 4)}
	stranger := &Client{hub: hub, userID: uuid.New(), send: make(chan []byte, 4)}
	hub.Register(first)
	hub.Register(second)
	hub.Register(stranger)

	hub.Publish(userID, "notification:new", map[string]string{"id": "n1"})

	for _, c := range []*Client{first, second} {
		env := receive(t, c.send)
		assert.Equal(t, "notification:new", env.Type)
		assert.Equal(t, map[string]any{"id": "n1"}, env.Data)
	}
	select {
	case <-stranger.send:
		t.Fatal("событие ушло чужому пользователю")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	slow := &Client{hub: hub, userID: userID, send: make(chan []byte, 1)}
	hub.Register(slow)

	hub.Publish(userID, "message:new", 1)
	hub.Publish(userID, "message:new", 2)

	require.Eventually(t, func() bool { return hub.Connected(userID) == 0 }, time.Second, 10*time.Millisecond)
	env := receive(t, slow.send)
	assert.EqualValues(t, 1, env.Data)
	_, ok := <-slow.send
	assert.False(t, ok)
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := startHub(t)
	c := &Client{hub: hub, userID: uuid.New(), send: make(chan []byte, 1)}
	hub.Register(c)
	hub.Unregister(c)
	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.Connected(c.userID) == 0 }, time.Second, 10*time.Millisecond)
	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub()
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.Publish(uuid.New(), "notification:new", i)
	}
	assert.Len(t, hub.broadcast, cap(hub.broadcast))
}

func TestClient_ReceivesOverWebsocket(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(conn, hub, userID)
		hub.Register(client)
		client.Run(context.Background())
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connected(userID) == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish(userID, "conversation:read", map[string]int{"count": 2})

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env envelope
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, "conversation:read", env.Type)
}
