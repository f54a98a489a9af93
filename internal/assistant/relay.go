// Package assistant relays portal questions to a generative AI API. Each ask
// is a stateless single-turn exchange; the portal's fixture data rides along
// as the model's knowledge base.
package assistant

import (
	"context"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fsferdows/dhaka17-portal/internal/config"
	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// messenger is the slice of the anthropic client used by the relay.
type messenger interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// electionStore provides the knowledge-base snapshot embedded in each prompt.
type electionStore interface {
	Candidates() []domain.Candidate
	Events() []domain.ElectionEvent
	Centers() []domain.VotingCenter
}

// AskInput is a single assistant question.
type AskInput struct {
	Query    string          `json:"query"`
	Language domain.Language `json:"language"`
}

// Validate checks the input.
func (in AskInput) Validate() error {
	if strings.TrimSpace(in.Query) == "" {
		return domain.NewValidationError("query", "must not be empty")
	}
	return nil
}

// AskResult is the assistant's reply.
type AskResult struct {
	Answer   string          `json:"answer"`
	Language domain.Language `json:"language"`
}

// Relay sends assistant questions upstream and shields callers from upstream
// failures with a fixed bilingual apology.
type Relay struct {
	log   *slog.Logger
	msgr  messenger
	store electionStore
	cfg   config.AssistantConfig
}

// NewRelay creates a relay backed by the anthropic Messages API.
func NewRelay(logger *slog.Logger, store electionStore, cfg config.AssistantConfig) *Relay {
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &Relay{
		log:   logger.With("service", "assistant"),
		msgr:  sdkMessenger{client: client},
		store: store,
		cfg:   cfg,
	}
}

// Ask answers a single question. Malformed input fails validation; any
// upstream failure degrades to the fixed apology for the requested language
// and is never surfaced as an error.
func (r *Relay) Ask(ctx context.Context, input AskInput) (*AskResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	system := buildSystemPrompt(r.store.Candidates(), r.store.Events(), r.store.Centers(), input.Language)

	msg, err := r.msgr.CreateMessage(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(r.cfg.Model),
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: anthropic.Float(r.cfg.Temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(input.Query)),
		},
	})
	if err != nil {
		r.log.WarnContext(ctx, "assistant upstream call failed", slog.String("error", err.Error()))
		return &AskResult{Answer: apology(input.Language), Language: input.Language}, nil
	}
	if len(msg.Content) == 0 {
		r.log.WarnContext(ctx, "assistant upstream returned empty content")
		return &AskResult{Answer: apology(input.Language), Language: input.Language}, nil
	}

	return &AskResult{Answer: msg.Content[0].Text, Language: input.Language}, nil
}

// sdkMessenger adapts the anthropic client to the messenger interface.
type sdkMessenger struct {
	client anthropic.Client
}

func (m sdkMessenger) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return m.client.Messages.New(ctx, params)
}
