package voice

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsferdows/dhaka17-portal/internal/voice/live"
)

type upstreamMock struct {
	SendAudioFunc func(ctx context.Context, data string) error
	RecvFunc      func(ctx context.Context) (live.Event, error)
	closed        atomic.Bool
}

func (m *upstreamMock) SendAudio(ctx context.Context, data string) error {
	if m.SendAudioFunc == nil {
		return nil
	}
	return m.SendAudioFunc(ctx, data)
}

func (m *upstreamMock) Recv(ctx context.Context) (live.Event, error) {
	if m.RecvFunc == nil {
		<-ctx.Done()
		return live.Event{}, ctx.Err()
	}
	return m.RecvFunc(ctx)
}

func (m *upstreamMock) Close() error {
	m.closed.Store(true)
	return nil
}

type callerMock struct {
	RecvAudioFunc func(ctx context.Context) (string, error)
	SendEventFunc func(ctx context.Context, ev live.Event) error
}

func (m *callerMock) RecvAudio(ctx context.Context) (string, error) {
	if m.RecvAudioFunc == nil {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.RecvAudioFunc(ctx)
}

func (m *callerMock) SendEvent(ctx context.Context, ev live.Event) error {
	if m.SendEventFunc == nil {
		return nil
	}
	return m.SendEventFunc(ctx, ev)
}

func newTestCall(up upstreamSession) (*Call, *Scheduler) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	sched := NewScheduler(OutputSampleRate)
	return NewCall(logger, up, sched), sched
}

// scriptedRecv returns events one at a time and then the given terminal
// error.
func scriptedRecv(events []live.Event, final error) func(ctx context.Context) (live.Event, error) {
	i := 0
	return func(ctx context.Context) (live.Event, error) {
		if i >= len(events) {
			return live.Event{}, final
		}
		ev := events[i]
		i++
		return ev, nil
	}
}

func TestCall_LifecycleWithInterruption(t *testing.T) {
	t.Parallel()

	chunk := EncodeFrame(frame(0.5))
	up := &upstreamMock{
		RecvFunc: scriptedRecv([]live.Event{
			{Audio: chunk},
			{Audio: chunk},
			{Interrupted: true},
			{Audio: chunk},
			{TurnComplete: true},
		}, io.EOF),
	}
	call, sched := newTestCall(up)

	var forwarded []live.Event
	caller := &callerMock{
		SendEventFunc: func(_ context.Context, ev live.Event) error {
			forwarded = append(forwarded, ev)
			return nil
		},
	}

	require.False(t, call.CaptureReleased())
	err := call.Run(context.Background(), caller)
	require.NoError(t, err, "a normal upstream close is not an error")

	assert.Equal(t, 0, sched.Scheduled(), "nothing may remain scheduled after the call")
	assert.True(t, call.CaptureReleased())
	assert.True(t, up.closed.Load())

	require.Len(t, forwarded, 5)
	assert.True(t, forwarded[2].Interrupted)
	assert.True(t, forwarded[4].TurnComplete)
}

func TestCall_ForwardsCallerAudio(t *testing.T) {
	t.Parallel()

	frames := []string{"YQ==", "Yg==", "Yw=="}
	i := 0
	caller := &callerMock{
		RecvAudioFunc: func(ctx context.Context) (string, error) {
			if i >= len(frames) {
				// Caller hangs up.
				return "", io.EOF
			}
			f := frames[i]
			i++
			return f, nil
		},
	}

	var sent []string
	up := &upstreamMock{
		SendAudioFunc: func(_ context.Context, data string) error {
			sent = append(sent, data)
			return nil
		},
	}
	call, _ := newTestCall(up)

	err := call.Run(context.Background(), caller)
	require.NoError(t, err, "a caller hangup is not an error")
	assert.Equal(t, frames, sent)
	assert.True(t, call.CaptureReleased())
	assert.True(t, up.closed.Load())
}

func TestCall_InterruptDiscardsQueuedPlayback(t *testing.T) {
	t.Parallel()

	chunk := EncodeFrame(frame(30))
	sawInterrupt := false
	up := &upstreamMock{
		RecvFunc: scriptedRecv([]live.Event{
			{Audio: chunk},
			{Audio: chunk},
			{Interrupted: true},
		}, io.EOF),
	}
	call, sched := newTestCall(up)

	caller := &callerMock{
		SendEventFunc: func(_ context.Context, ev live.Event) error {
			if ev.Interrupted {
				sawInterrupt = true
				// Long frames were queued, the interrupt must have
				// cleared them before reaching the caller.
				assert.Equal(t, 0, sched.Scheduled())
			}
			return nil
		},
	}

	require.NoError(t, call.Run(context.Background(), caller))
	assert.True(t, sawInterrupt)
}

func TestCall_UpstreamFailureStillTearsDown(t *testing.T) {
	t.Parallel()

	up := &upstreamMock{
		RecvFunc: scriptedRecv(nil, assert.AnError),
	}
	call, _ := newTestCall(up)

	err := call.Run(context.Background(), &callerMock{})
	require.Error(t, err)
	assert.True(t, call.CaptureReleased())
	assert.True(t, up.closed.Load())
}

func TestCall_ContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	call, _ := newTestCall(&upstreamMock{})

	done := make(chan error, 1)
	go func() { done <- call.Run(ctx, &callerMock{}) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("call did not stop after context cancel")
	}
	assert.True(t, call.CaptureReleased())
}
