// Package live speaks the upstream bidirectional realtime audio protocol
// over a websocket: one setup exchange, then interleaved audio chunks in
// both directions.
package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/fsferdows/dhaka17-portal/internal/config"
)

// Event is one message from the upstream session.
type Event struct {
	// Audio is a base64 PCM chunk of model speech, empty when the message
	// carries no audio.
	Audio string
	// Interrupted is set when the caller barged in and queued playback
	// must be discarded.
	Interrupted bool
	// TurnComplete is set when the model finished its reply.
	TurnComplete bool
}

type setupMessage struct {
	Setup setupPayload `json:"setup"`
}

type setupPayload struct {
	Model             string            `json:"model"`
	GenerationConfig  generationConfig  `json:"generationConfig"`
	SystemInstruction systemInstruction `json:"systemInstruction"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type systemInstruction struct {
	Parts []textPart `json:"parts"`
}

type textPart struct {
	Text string `json:"text"`
}

type realtimeInputMessage struct {
	RealtimeInput realtimeInput `json:"realtimeInput"`
}

type realtimeInput struct {
	MediaChunks []mediaChunk `json:"mediaChunks"`
}

type mediaChunk struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type serverMessage struct {
	SetupComplete *struct{}      `json:"setupComplete"`
	ServerContent *serverContent `json:"serverContent"`
}

type serverContent struct {
	ModelTurn    *modelTurn `json:"modelTurn"`
	Interrupted  bool       `json:"interrupted"`
	TurnComplete bool       `json:"turnComplete"`
}

type modelTurn struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	InlineData *inlineData `json:"inlineData"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Client is one live session with the upstream audio endpoint.
type Client struct {
	log  *slog.Logger
	conn *websocket.Conn
	mime string
}

// Dial opens a session, sends the setup message, and waits for the setup
// acknowledgement.
func Dial(ctx context.Context, cfg config.VoiceConfig, systemPrompt, inputMimeType string, logger *slog.Logger) (*Client, error) {
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("live.Dial parse endpoint: %w", err)
	}
	q := endpoint.Query()
	q.Set("key", cfg.APIKey)
	endpoint.RawQuery = q.Encode()

	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("live.Dial: %w", err)
	}
	// Audio chunks run well past the library default.
	conn.SetReadLimit(1 << 22)

	c := &Client{
		log:  logger.With("component", "live"),
		conn: conn,
		mime: inputMimeType,
	}

	setup := setupMessage{Setup: setupPayload{
		Model: cfg.Model,
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: cfg.VoiceName},
				},
			},
		},
		SystemInstruction: systemInstruction{Parts: []textPart{{Text: systemPrompt}}},
	}}
	if err := wsjson.Write(dialCtx, conn, setup); err != nil {
		conn.Close(websocket.StatusInternalError, "setup failed")
		return nil, fmt.Errorf("live.Dial send setup: %w", err)
	}

	var ack serverMessage
	if err := wsjson.Read(dialCtx, conn, &ack); err != nil {
		conn.Close(websocket.StatusInternalError, "setup failed")
		return nil, fmt.Errorf("live.Dial read setup ack: %w", err)
	}
	if ack.SetupComplete == nil {
		conn.Close(websocket.StatusProtocolError, "unexpected setup reply")
		return nil, fmt.Errorf("live.Dial: upstream did not acknowledge setup")
	}

	c.log.InfoContext(ctx, "live session established", slog.String("model", cfg.Model))
	return c, nil
}

// SendAudio forwards one base64 PCM chunk of caller audio upstream.
func (c *Client) SendAudio(ctx context.Context, data string) error {
	msg := realtimeInputMessage{RealtimeInput: realtimeInput{
		MediaChunks: []mediaChunk{{MimeType: c.mime, Data: data}},
	}}
	if err := wsjson.Write(ctx, c.conn, msg); err != nil {
		return fmt.Errorf("live.SendAudio: %w", err)
	}
	return nil
}

// Recv reads the next upstream message and reduces it to an Event. Messages
// that carry nothing a caller acts on come back as zero events.
func (c *Client) Recv(ctx context.Context) (Event, error) {
	var msg serverMessage
	if err := wsjson.Read(ctx, c.conn, &msg); err != nil {
		return Event{}, fmt.Errorf("live.Recv: %w", err)
	}

	var ev Event
	if sc := msg.ServerContent; sc != nil {
		ev.Interrupted = sc.Interrupted
		ev.TurnComplete = sc.TurnComplete
		if sc.ModelTurn != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part.InlineData != nil && part.InlineData.Data != "" {
					ev.Audio = part.InlineData.Data
					break
				}
			}
		}
	}
	return ev, nil
}

// Close ends the session.
func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "call ended")
}
