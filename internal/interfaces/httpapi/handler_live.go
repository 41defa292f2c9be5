package httpapi

import (
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/platform/livefeed"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = 50 * time.Second
)

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Origins are already filtered by the CORS middleware.
	CheckOrigin: func(*http.Request) bool { return true },
}

type liveMessageDTO struct {
	MatchID int64  `json:"matchId"`
	Kind    string `json:"kind"`
	Data    any    `json:"data"`
}

func liveMessageToDTO(u livefeed.Update) liveMessageDTO {
	var data any
	switch payload := u.Payload.(type) {
	case match.Session:
		data = matchToDTO(payload)
	case event.Event:
		data = eventToDTO(payload)
	case int:
		data = map[string]int{"deleted": payload}
	default:
		data = payload
	}
	return liveMessageDTO{MatchID: u.MatchID, Kind: u.Kind, Data: data}
}

// StreamLive pushes phase changes and timeline updates of one match over a
// websocket. The first frame is the current live state.
func (h *Handler) StreamLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamLive")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.LiveState(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "live stream lookup failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	conn, err := liveUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		h.logger.WarnContext(ctx, "websocket upgrade failed", "match_id", id, "error", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.liveFeed.Subscribe(ctx, id)
	defer cancel()

	h.logger.InfoContext(ctx, "live subscriber connected", "match_id", id, "subscribers", h.liveFeed.Subscribers(id))

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(livePongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeLiveFrame(conn, liveMessageDTO{MatchID: id, Kind: "state", Data: liveStateToDTO(state)}); err != nil {
		return
	}

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := writeLiveFrame(conn, liveMessageToDTO(update)); err != nil {
				h.logger.DebugContext(ctx, "live frame write failed", "match_id", id, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeLiveFrame(conn *websocket.Conn, msg liveMessageDTO) error {
	payload, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
