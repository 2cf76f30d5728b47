package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"poke_explorer/internal/service"

	"github.com/gorilla/websocket"
)

type envelope struct {
	Type   string          `json:"type"`
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func dialLive(t *testing.T, s *service.Service, hdr http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(s))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/api/search/live"

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	return dialer.Dial(u.String(), hdr)
}

func roundTrip(t *testing.T, conn *websocket.Conn, frame string) envelope {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	return env
}

func TestLiveSearch_ResultAndErrors(t *testing.T) {
	pk := &mockPokemon{searchBody: json.RawMessage(`{"id":25,"name":"pikachu"}`)}
	conn, _, err := dialLive(t, &service.Service{Authorization: signedIn(), Pokemon: pk}, authHeader("t"))
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	env := roundTrip(t, conn, `{"term":"Pikachu"}`)
	if env.Type != "result" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var detail struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil || detail.ID != 25 {
		t.Fatalf("unexpected data %s (%v)", env.Data, err)
	}
	if pk.lastUserID != "u1" || pk.lastTerm != "Pikachu" {
		t.Fatalf("search forwarded user=%q term=%q", pk.lastUserID, pk.lastTerm)
	}

	env = roundTrip(t, conn, `not json`)
	if env.Type != "error" || env.Status != http.StatusBadRequest || env.Error != "invalid request body" {
		t.Fatalf("expected invalid body error, got %+v", env)
	}

	pk.err = &service.Error{Kind: service.ErrNotFound, Message: "pokemon not found"}
	env = roundTrip(t, conn, `{"term":"missingno"}`)
	if env.Type != "error" || env.Status != http.StatusNotFound || env.Error != "pokemon not found" {
		t.Fatalf("expected not found error, got %+v", env)
	}
}

func TestLiveSearch_RejectsWithoutToken(t *testing.T) {
	_, resp, err := dialLive(t, &service.Service{Authorization: signedIn()}, nil)
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 response, got %+v", resp)
	}
}
