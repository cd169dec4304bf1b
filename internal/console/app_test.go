package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smitstech/Shutdowner/internal/countdown"
	"github.com/smitstech/Shutdowner/internal/i18n"
	"github.com/smitstech/Shutdowner/internal/logger"
	"github.com/smitstech/Shutdowner/internal/validate"
)

// fakeClock is a manually advanced clock, safe to poke from the test goroutine
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(d time.Duration) countdown.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) ticker(i int) *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= len(c.tickers) {
		return nil
	}
	return c.tickers[i]
}

type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop() {}

// recordingExecutor captures dispatched actions
type recordingExecutor struct {
	mu      sync.Mutex
	actions []countdown.Action
}

func (e *recordingExecutor) Execute(ctx context.Context, a countdown.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.actions = append(e.actions, a)
	return nil
}

func (e *recordingExecutor) dispatched() []countdown.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]countdown.Action(nil), e.actions...)
}

// syncBuffer lets the test read output the loop goroutine writes
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type appFixture struct {
	clock    *fakeClock
	executor *recordingExecutor
	notifier *recordingNotifier
	out      *syncBuffer
	app      *App
}

func newAppFixture(in io.Reader, lang i18n.Lang) *appFixture {
	f := &appFixture{
		clock:    newFakeClock(),
		executor: &recordingExecutor{},
		notifier: &recordingNotifier{},
		out:      &syncBuffer{},
	}
	log := logger.NewWriterLogger(io.Discard, logger.LevelDebug)
	presenter := NewPresenter(f.out, i18n.New(lang), f.notifier, log, "Shutdowner")
	f.app = NewApp(Options{
		In:        in,
		Presenter: presenter,
		Executor:  f.executor,
		Clock:     f.clock,
		Logger:    log,
		Action:    countdown.DefaultAction,
	})
	return f
}

func TestHandleLineSetsFieldsAndStarts(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)

	assert.False(t, f.app.handleLine("1:30:00"))
	assert.False(t, f.app.handleLine("s"))

	ctrl := f.app.Controller()
	assert.Equal(t, countdown.StatusRunning, ctrl.Status())
	assert.Equal(t, 5400, ctrl.Remaining())
	assert.Contains(t, f.out.String(), "Time set: 1:30:0")
	assert.Contains(t, f.out.String(), "Time left: 01:30:00")
	assert.Contains(t, f.out.String(), "[s] Stop")
}

func TestHandleLineToggleStopsAndClears(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)
	require.NoError(t, f.app.SetTime("0", "1", "0"))

	f.app.handleLine("")
	require.Equal(t, countdown.StatusRunning, f.app.Controller().Status())

	f.app.handleLine("S")
	assert.Equal(t, countdown.StatusIdle, f.app.Controller().Status())

	// Fields were cleared, so another start asks for a time.
	f.app.handleLine("s")
	assert.Equal(t, countdown.StatusIdle, f.app.Controller().Status())
	assert.Contains(t, f.out.String(), "! Enter time!")
}

func TestHandleLineZeroDurationLocalized(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.UK)

	f.app.handleLine("s")

	assert.Equal(t, countdown.StatusIdle, f.app.Controller().Status())
	assert.Contains(t, f.out.String(), "! Введіть час!")
}

func TestHandleLineRejectsNonIntegers(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)
	require.NoError(t, f.app.SetTime("", "5", ""))

	f.app.handleLine("1:x:3")

	assert.Contains(t, f.out.String(), "! Only int values!")
	assert.Equal(t, "5", f.app.fields.Minutes, "rejected input must not replace the fields")
}

func TestHandleLineUnknownCommand(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)

	f.app.handleLine("1 2 3 4")

	assert.Contains(t, f.out.String(), "Unknown command")
}

func TestHandleLineSelectsAction(t *testing.T) {
	tests := []struct {
		key      string
		expected countdown.Action
	}{
		{"p", countdown.ActionPowerOff},
		{"з", countdown.ActionPowerOff},
		{"r", countdown.ActionRestart},
		{"к", countdown.ActionRestart},
		{"h", countdown.ActionHibernate},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f := newAppFixture(strings.NewReader(""), i18n.EN)
			initial := countdown.ActionRestart
			if tt.expected == countdown.ActionRestart {
				initial = countdown.ActionHibernate
			}
			f.app.Controller().SetAction(initial)

			f.app.handleLine(tt.key)

			assert.Equal(t, tt.expected, f.app.Controller().Action())
		})
	}
}

func TestHandleLineIgnoresTimeWhileRunning(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)
	require.NoError(t, f.app.SetTime("0", "0", "30"))
	f.app.Toggle()

	f.app.handleLine("5:00")

	assert.Equal(t, "30", f.app.fields.Seconds)
	assert.Equal(t, 30, f.app.Controller().Remaining())
}

func TestHandleLineQuit(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)
	assert.True(t, f.app.handleLine("q"))
	assert.True(t, f.app.handleLine("\x1b"))
}

func TestSetTimeRejectsInvalid(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)

	assert.Error(t, f.app.SetTime("1", "-2", "0"))
	assert.NoError(t, f.app.SetTime("", "010", ""))
	assert.Equal(t, "10", f.app.fields.Minutes)
}

func TestRunFiresSelectedAction(t *testing.T) {
	inR, inW := io.Pipe()
	f := newAppFixture(inR, i18n.EN)
	dispatchedBeforeNotify := -1
	f.notifier.onNotify = func() { dispatchedBeforeNotify = len(f.executor.dispatched()) }

	result := make(chan error, 1)
	go func() { result <- f.app.Run(context.Background()) }()

	_, err := io.WriteString(inW, "0:0:2\nr\ns\n")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return f.clock.ticker(0) != nil }, time.Second, 5*time.Millisecond)
	ticker := f.clock.ticker(0)

	f.clock.Advance(time.Second)
	ticker.ch <- time.Time{}
	f.clock.Advance(time.Second)
	ticker.ch <- time.Time{}

	require.Eventually(t, func() bool { return len(f.executor.dispatched()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []countdown.Action{countdown.ActionRestart}, f.executor.dispatched())

	require.NoError(t, inW.Close())
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after input closed")
	}

	out := f.out.String()
	assert.Contains(t, out, "Mode: Restart")
	assert.Contains(t, out, "Time left: 00:00:01")
	assert.Contains(t, out, "Time is up: Restart")
	assert.Equal(t, countdown.StatusIdle, f.app.Controller().Status())

	assert.Equal(t, []string{"Shutdowner: Time is up: Restart"}, f.notifier.messages)
	assert.Equal(t, 1, dispatchedBeforeNotify, "the action must be dispatched before the notification")
	assert.Equal(t, validate.Fields{}, f.app.fields, "fields are cleared once the countdown fires")
}

func TestRunKeepsCountingAfterInputEnds(t *testing.T) {
	f := newAppFixture(strings.NewReader("0:0:1\ns\n"), i18n.EN)

	result := make(chan error, 1)
	go func() { result <- f.app.Run(context.Background()) }()

	require.Eventually(t, func() bool { return f.clock.ticker(0) != nil }, time.Second, 5*time.Millisecond)
	f.clock.Advance(time.Second)
	f.clock.ticker(0).ch <- time.Time{}

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the countdown fired")
	}
	assert.Equal(t, []countdown.Action{countdown.ActionHibernate}, f.executor.dispatched())
}

func TestRestartAfterFireAsksForTime(t *testing.T) {
	f := newAppFixture(strings.NewReader(""), i18n.EN)
	require.NoError(t, f.app.SetTime("", "", "1"))
	f.app.Toggle()

	f.clock.Advance(time.Second)
	f.app.handleTick(context.Background())
	require.Equal(t, []countdown.Action{countdown.ActionHibernate}, f.executor.dispatched())

	f.app.handleLine("s")

	assert.Equal(t, countdown.StatusIdle, f.app.Controller().Status())
	assert.Contains(t, f.out.String(), "! Enter time!")
}

func TestRunStopsOnContextCancel(t *testing.T) {
	inR, inW := io.Pipe()
	defer inW.Close()
	f := newAppFixture(inR, i18n.EN)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- f.app.Run(ctx) }()

	_, err := io.WriteString(inW, "10\ns\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.clock.ticker(0) != nil }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Empty(t, f.executor.dispatched())
	assert.Equal(t, countdown.StatusIdle, f.app.Controller().Status())
}

func TestRunQuit(t *testing.T) {
	f := newAppFixture(strings.NewReader("q\ns\n"), i18n.EN)

	require.NoError(t, f.app.Run(context.Background()))
	assert.Nil(t, f.clock.ticker(0), "nothing after quit may run")
}
