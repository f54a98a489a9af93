package voice

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// CallRequest asks any listening client surface to start a voice call.
type CallRequest struct {
	ID          string          `json:"id"`
	Language    domain.Language `json:"language"`
	RequestedAt time.Time       `json:"requestedAt"`
}

// Hub fans call requests out to subscribers. A slow subscriber drops
// requests rather than blocking the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[chan CallRequest]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan CallRequest]struct{})}
}

// Publish stamps and delivers a request to every current subscriber, and
// returns the stamped request.
func (h *Hub) Publish(lang domain.Language) CallRequest {
	req := CallRequest{
		ID:          uuid.NewString(),
		Language:    lang,
		RequestedAt: time.Now().UTC(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- req:
		default:
		}
	}
	return req
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the subscription.
func (h *Hub) Subscribe() (<-chan CallRequest, func()) {
	ch := make(chan CallRequest, 4)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}
