package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fsferdows/dhaka17-portal/internal/voice/live"
)

// upstreamSession is the slice of the live client used by a call.
type upstreamSession interface {
	SendAudio(ctx context.Context, data string) error
	Recv(ctx context.Context) (live.Event, error)
	Close() error
}

// callerLink is the caller's side of the bridge, typically a websocket held
// by the transport layer.
type callerLink interface {
	// RecvAudio blocks for the caller's next base64 PCM frame.
	RecvAudio(ctx context.Context) (string, error)
	// SendEvent delivers an upstream event to the caller.
	SendEvent(ctx context.Context, ev live.Event) error
}

// Call bridges one caller and one upstream session: caller audio goes up,
// model audio comes down through the playback scheduler. Teardown runs the
// same way no matter which side ends the call: the upstream session closes,
// scheduled playback stops, and the capture side is released.
type Call struct {
	log      *slog.Logger
	up       upstreamSession
	sched    *Scheduler
	released atomic.Bool
}

// NewCall creates a bridge over an established upstream session.
func NewCall(logger *slog.Logger, up upstreamSession, sched *Scheduler) *Call {
	return &Call{
		log:   logger.With("component", "call"),
		up:    up,
		sched: sched,
	}
}

// Run pumps both directions until the caller hangs up, the upstream closes,
// or either side fails, then tears the call down. There is no reconnection;
// a new call needs a new bridge.
func (c *Call) Run(ctx context.Context, caller callerLink) error {
	defer func() {
		c.up.Close()
		discarded := c.sched.Stop()
		c.released.Store(true)
		c.log.Info("call ended", slog.Int("discarded_frames", discarded))
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			frame, err := caller.RecvAudio(gctx)
			if err != nil {
				return fmt.Errorf("caller uplink: %w", err)
			}
			if err := c.up.SendAudio(gctx, frame); err != nil {
				return fmt.Errorf("upstream uplink: %w", err)
			}
		}
	})

	g.Go(func() error {
		for {
			ev, err := c.up.Recv(gctx)
			if err != nil {
				return fmt.Errorf("upstream downlink: %w", err)
			}

			if ev.Interrupted {
				n := c.sched.Interrupt()
				c.log.Debug("playback interrupted", slog.Int("discarded_frames", n))
			}
			if ev.Audio != "" {
				pcm, err := DecodeFrame(ev.Audio)
				if err != nil {
					return fmt.Errorf("downlink frame: %w", err)
				}
				c.sched.Schedule(pcm)
			}

			if ev.Audio != "" || ev.Interrupted || ev.TurnComplete {
				if err := caller.SendEvent(gctx, ev); err != nil {
					return fmt.Errorf("caller downlink: %w", err)
				}
			}
		}
	})

	err := g.Wait()
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// CaptureReleased reports whether teardown has run and the caller's capture
// side may be released.
func (c *Call) CaptureReleased() bool {
	return c.released.Load()
}
