package countdown

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/smitstech/Shutdowner/internal/i18n"
	"github.com/smitstech/Shutdowner/internal/logger"
)

const (
	// TickInterval is the refresh cadence while a countdown is running
	TickInterval = time.Second
	// dispatchTimeout bounds the executor call made when the countdown fires
	dispatchTimeout = 30 * time.Second
	// MaxSeconds is the longest countdown Start accepts, about 68 years.
	// It fits in int on every platform and in time.Duration.
	MaxSeconds = math.MaxInt32
)

var (
	// ErrInvalidDuration is returned by Start when the requested duration is zero
	ErrInvalidDuration = errors.New("countdown duration must be greater than zero")
	// ErrNegativeDuration is returned by Start when any time part is negative
	ErrNegativeDuration = errors.New("countdown time parts must be non-negative")
	// ErrAlreadyRunning is returned by Start while a countdown is in progress
	ErrAlreadyRunning = errors.New("countdown already running")
	// ErrDurationTooLong is returned by Start when the total exceeds MaxSeconds
	ErrDurationTooLong = errors.New("countdown duration too long")
)

// Presenter receives display updates from the controller
type Presenter interface {
	OnTick(remaining string)
	OnStateChanged(status Status)
	OnValidationRejected(messageKey string)
}

// Executor performs a terminal action. The controller does not retry
// and does not wait for the OS to act on the request.
type Executor interface {
	Execute(ctx context.Context, action Action) error
}

// Logger interface for controller logging
type Logger interface {
	Debugf(eventID uint32, format string, args ...interface{})
	Infof(eventID uint32, format string, args ...interface{})
	Errorf(eventID uint32, format string, args ...interface{})
}

// Controller owns the countdown state machine.
//
// It is not safe for concurrent use: Start, Stop, Tick and SetAction must be
// called from the goroutine that also receives from TickC.
type Controller struct {
	clock     Clock
	presenter Presenter
	executor  Executor
	logger    Logger

	status   Status
	finishAt time.Time
	action   Action
	ticker   Ticker
}

// NewController creates an idle controller with the default action selected
func NewController(clock Clock, presenter Presenter, executor Executor, log Logger) *Controller {
	if clock == nil {
		clock = SystemClock
	}
	return &Controller{
		clock:     clock,
		presenter: presenter,
		executor:  executor,
		logger:    log,
		status:    StatusIdle,
		action:    DefaultAction,
	}
}

// Status returns the current state
func (c *Controller) Status() Status {
	return c.status
}

// Action returns the currently selected terminal action
func (c *Controller) Action() Action {
	return c.action
}

// FinishAt returns the fire time; ok is false while idle
func (c *Controller) FinishAt() (t time.Time, ok bool) {
	if c.status != StatusRunning {
		return time.Time{}, false
	}
	return c.finishAt, true
}

// Remaining returns the whole seconds left, never negative. Zero when idle.
func (c *Controller) Remaining() int {
	if c.status != StatusRunning {
		return 0
	}
	if r := c.remaining(); r > 0 {
		return r
	}
	return 0
}

// TickC returns the channel delivering ticks, or nil while idle.
// A nil channel blocks forever, so it can sit in a select unconditionally.
func (c *Controller) TickC() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C()
}

// SetAction selects the terminal action. Allowed in any state.
func (c *Controller) SetAction(action Action) {
	if !action.Valid() {
		return
	}
	if action != c.action {
		c.logger.Infof(logger.EventActionSelected, "Action changed: %s -> %s", c.action, action)
	}
	c.action = action
}

// Start arms the countdown for h hours, m minutes and s seconds
func (c *Controller) Start(h, m, s int) error {
	if c.status == StatusRunning {
		return ErrAlreadyRunning
	}
	total, err := totalSeconds(h, m, s)
	if err != nil {
		c.logger.Debugf(logger.EventDurationRejected, "Rejected time parts %d:%d:%d: %v", h, m, s, err)
		return err
	}
	if total == 0 {
		c.logger.Debugf(logger.EventDurationRejected, "Rejected zero duration")
		c.presenter.OnValidationRejected(i18n.KeyEnterTime)
		return ErrInvalidDuration
	}

	c.finishAt = c.clock.Now().Add(time.Duration(total) * time.Second)
	c.ticker = c.clock.NewTicker(TickInterval)
	c.status = StatusRunning

	c.logger.Infof(logger.EventCountdownStarted, "Countdown started: %s until %s (action: %s)",
		FormatRemaining(total), c.finishAt.Format("2006-01-02 15:04:05"), c.action)
	c.presenter.OnStateChanged(StatusRunning)

	// Show the remaining time right away instead of waiting a full second.
	c.presenter.OnTick(FormatRemaining(total))
	return nil
}

// Stop cancels a running countdown. Calling it while idle does nothing.
func (c *Controller) Stop() {
	if c.status != StatusRunning {
		return
	}

	c.ticker.Stop()
	c.ticker = nil
	c.finishAt = time.Time{}
	c.status = StatusIdle

	c.logger.Infof(logger.EventCountdownStopped, "Countdown stopped")
	c.presenter.OnStateChanged(StatusIdle)
}

// Tick recomputes the remaining time. When it reaches zero the countdown
// stops and the selected action is dispatched exactly once.
func (c *Controller) Tick(ctx context.Context) {
	if c.status != StatusRunning {
		return
	}

	remaining := c.remaining()
	if remaining > 0 {
		c.logger.Debugf(logger.EventCountdownTick, "Remaining: %ds", remaining)
		c.presenter.OnTick(FormatRemaining(remaining))
		return
	}

	action := c.action
	c.Stop()
	c.logger.Infof(logger.EventCountdownFinished, "Countdown finished, dispatching %s", action)

	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	if err := c.executor.Execute(ctx, action); err != nil {
		c.logger.Errorf(logger.EventActionError, "Failed to dispatch %s: %v", action, err)
		return
	}
	c.logger.Infof(logger.EventActionDispatched, "Dispatched %s", action)
}

// totalSeconds sums the parts in int64 so no input can wrap around
func totalSeconds(h, m, s int) (int, error) {
	if h < 0 || m < 0 || s < 0 {
		return 0, ErrNegativeDuration
	}

	hh, mm, ss := int64(h), int64(m), int64(s)
	if hh > MaxSeconds/3600 || mm > MaxSeconds/60 || ss > MaxSeconds {
		return 0, ErrDurationTooLong
	}
	total := hh*3600 + mm*60 + ss
	if total > MaxSeconds {
		return 0, ErrDurationTooLong
	}
	return int(total), nil
}

func (c *Controller) remaining() int {
	d := c.finishAt.Sub(c.clock.Now()).Round(time.Second)
	return int(d / time.Second)
}
