package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	poke "poke_explorer"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

const (
	wsTypeResult = "result"
	wsTypeError  = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type   string          `json:"type"`
	Status int             `json:"status,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// wsFrame is one decoded client message, or the reason it could not be decoded.
type wsFrame struct {
	req poke.SearchRequest
	err error
}

var upgrader = websocket.Upgrader{
	// Access is gated by the bearer token, not the origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live search
// @Description  WebSocket. Each frame {"term":"..."} runs a search; replies are {"type":"result","data":...} or {"type":"error","status":...,"error":...}.
// @Tags         search
// @Success      101
// @Failure      401  {object}  poke_explorer.ErrorResponse
// @Router       /api/search/live [get]
// @Security     BearerAuth
func (h *Handler) liveSearch(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine decodes frames; this goroutine is the only writer.
	frames := make(chan wsFrame)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, frames, done, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case f := <-frames:
			if err := h.answer(ctx, conn, userID, f); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// startReader decodes incoming frames until the connection closes.
func (h *Handler) startReader(conn *websocket.Conn, frames chan<- wsFrame, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			h.log.Infow("ws_read_closed", "err", err)
			return
		}
		var f wsFrame
		f.err = json.Unmarshal(data, &f.req)
		select {
		case frames <- f:
		case <-stop:
			return
		}
	}
}

// answer runs one search and writes its envelope with a write deadline.
func (h *Handler) answer(ctx context.Context, conn *websocket.Conn, userID string, f wsFrame) error {
	var env wsEnvelope
	if f.err != nil {
		env = wsEnvelope{Type: wsTypeError, Status: http.StatusBadRequest, Error: errInvalidBody}
	} else if body, err := h.services.Search(ctx, userID, f.req.Term); err != nil {
		code, resp := classify(err)
		if code >= http.StatusInternalServerError {
			h.log.Errorw("ws_search_failed", "err", err, "user_id", userID, "term", f.req.Term)
		}
		env = wsEnvelope{Type: wsTypeError, Status: code, Error: resp.Message}
	} else {
		env = wsEnvelope{Type: wsTypeResult, Data: body}
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
