package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/fsferdows/dhaka17-portal/internal/config"
	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/internal/voice"
	"github.com/fsferdows/dhaka17-portal/internal/voice/live"
)

// voiceStore provides the grounding data for the voice assistant's prompt.
type voiceStore interface {
	Candidates() []domain.Candidate
	Centers() []domain.VotingCenter
}

// VoiceHandler serves the live voice call and the call-request channel.
type VoiceHandler struct {
	cfg   config.VoiceConfig
	store voiceStore
	hub   *voice.Hub
	log   *slog.Logger
}

// NewVoiceHandler creates a VoiceHandler.
func NewVoiceHandler(cfg config.VoiceConfig, store voiceStore, hub *voice.Hub, logger *slog.Logger) *VoiceHandler {
	return &VoiceHandler{
		cfg:   cfg,
		store: store,
		hub:   hub,
		log:   logger.With("handler", "voice"),
	}
}

// clientFrame is one caller-to-portal websocket message.
type clientFrame struct {
	Audio string `json:"audio"`
}

// serverEvent is one portal-to-caller websocket message.
type serverEvent struct {
	Audio        string `json:"audio,omitempty"`
	Interrupted  bool   `json:"interrupted,omitempty"`
	TurnComplete bool   `json:"turnComplete,omitempty"`
}

// Call handles GET /api/voice/call. It upgrades to a websocket, opens the
// upstream live session, and bridges the two until either side ends the
// call.
func (h *VoiceHandler) Call(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket accept failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close(websocket.StatusInternalError, "call aborted")

	prompt := voice.SystemPrompt(h.store.Candidates(), h.store.Centers(), lang)
	up, err := live.Dial(r.Context(), h.cfg, prompt, voice.InputMimeType, h.log)
	if err != nil {
		h.log.ErrorContext(r.Context(), "live dial failed", slog.String("error", err.Error()))
		conn.Close(websocket.StatusTryAgainLater, "voice service unavailable")
		return
	}

	sched := voice.NewScheduler(voice.OutputSampleRate)
	call := voice.NewCall(h.log, up, sched)

	if err := call.Run(r.Context(), &wsCallerLink{conn: conn}); err != nil {
		h.log.WarnContext(r.Context(), "voice call failed", slog.String("error", err.Error()))
		return
	}

	conn.Close(websocket.StatusNormalClosure, "call ended")
}

// PublishCallRequest handles POST /api/voice/call-requests.
func (h *VoiceHandler) PublishCallRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Lang string `json:"lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	published := h.hub.Publish(domain.ParseLanguage(req.Lang))
	h.log.InfoContext(r.Context(), "call request published", slog.String("request_id", published.ID))
	writeJSON(w, http.StatusAccepted, published)
}

// SubscribeCallRequests handles GET /api/voice/call-requests as a
// server-sent event stream. Each published request arrives as one event.
func (h *VoiceHandler) SubscribeCallRequests(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case req := <-ch:
			payload, err := json.Marshal(req)
			if err != nil {
				h.log.ErrorContext(r.Context(), "marshal call request", slog.String("error", err.Error()))
				return
			}
			fmt.Fprintf(w, "event: call-request\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

// wsCallerLink adapts the caller's websocket to the call bridge.
type wsCallerLink struct {
	conn *websocket.Conn
}

func (l *wsCallerLink) RecvAudio(ctx context.Context) (string, error) {
	var frame clientFrame
	if err := wsjson.Read(ctx, l.conn, &frame); err != nil {
		return "", fmt.Errorf("read caller frame: %w", err)
	}
	return frame.Audio, nil
}

func (l *wsCallerLink) SendEvent(ctx context.Context, ev live.Event) error {
	return wsjson.Write(ctx, l.conn, serverEvent{
		Audio:        ev.Audio,
		Interrupted:  ev.Interrupted,
		TurnComplete: ev.TurnComplete,
	})
}
