package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/smitstech/Shutdowner/internal/countdown"
	"github.com/smitstech/Shutdowner/internal/i18n"
	"github.com/smitstech/Shutdowner/internal/keymap"
	"github.com/smitstech/Shutdowner/internal/logger"
	"github.com/smitstech/Shutdowner/internal/validate"
)

// Options configures an App
type Options struct {
	In        io.Reader
	Presenter *Presenter
	Executor  countdown.Executor
	Clock     countdown.Clock
	Logger    logger.Logger
	Keys      *keymap.Map
	Action    countdown.Action
}

// App wires terminal input to the countdown controller.
//
// Input is read on a separate goroutine and handed over line by line;
// everything else, including every controller call, runs inside Run.
type App struct {
	in        io.Reader
	presenter *Presenter
	ctrl      *countdown.Controller
	keys      *keymap.Map
	validator validate.StrictInt
	fields    validate.Fields
	logger    logger.Logger
}

// NewApp creates an idle App
func NewApp(opts Options) *App {
	keys := opts.Keys
	if keys == nil {
		keys = keymap.Default()
	}

	a := &App{
		in:        opts.In,
		presenter: opts.Presenter,
		keys:      keys,
		logger:    opts.Logger,
	}
	a.validator = validate.StrictInt{
		Check:    validate.Range(validate.MaxField),
		OnReject: a.presenter.OnValidationRejected,
	}

	exec := &announcingExecutor{next: opts.Executor, presenter: opts.Presenter}
	a.ctrl = countdown.NewController(opts.Clock, opts.Presenter, exec, opts.Logger)
	if opts.Action.Valid() {
		a.ctrl.SetAction(opts.Action)
	}
	return a
}

// Controller exposes the underlying state machine
func (a *App) Controller() *countdown.Controller {
	return a.ctrl
}

// SetTime fills the time fields as if the user had typed them
func (a *App) SetTime(h, m, s string) error {
	parts := []string{h, m, s}
	for i, v := range parts {
		n, ok := a.validator.Validate(v)
		if !ok {
			return fmt.Errorf("invalid time part %q", v)
		}
		parts[i] = n
	}
	a.fields = validate.Fields{Hours: parts[0], Minutes: parts[1], Seconds: parts[2]}
	return nil
}

// Toggle starts the countdown when idle and stops it when running
func (a *App) Toggle() {
	if a.ctrl.Status() == countdown.StatusRunning {
		a.ctrl.Stop()
		a.fields.Clear()
		return
	}

	h, m, s := a.fields.Values()
	if err := a.ctrl.Start(h, m, s); err != nil {
		a.logger.Debugf(logger.EventDurationRejected, "Start refused: %v", err)
	}
}

// Run processes input and ticks until ctx is done, the user quits, or the
// input ends and no countdown is left running.
func (a *App) Run(ctx context.Context) error {
	a.presenter.ShowMessage(i18n.KeyPrompt)
	a.presenter.ShowAction(a.ctrl.Action())

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go readLines(a.in, lines, readErr, done)

	defer a.ctrl.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info(logger.EventAppStop, "Interrupted")
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					a.logger.Warningf(logger.EventInputError, "Input closed: %v", err)
				}
				lines = nil
				if a.ctrl.Status() != countdown.StatusRunning {
					return nil
				}
				a.logger.Debug(logger.EventInputError, "Input closed, countdown keeps running")
				continue
			}
			if quit := a.handleLine(line); quit {
				a.logger.Info(logger.EventAppStop, "Quit requested")
				return nil
			}

		case <-a.ctrl.TickC():
			a.handleTick(ctx)
			if lines == nil && a.ctrl.Status() != countdown.StatusRunning {
				return nil
			}
		}
	}
}

// handleTick advances the countdown. Once it fires the entered time is
// cleared, so the next start asks for a fresh one.
func (a *App) handleTick(ctx context.Context) {
	a.ctrl.Tick(ctx)
	if a.ctrl.Status() != countdown.StatusRunning {
		a.fields.Clear()
	}
}

// handleLine runs one line of user input and reports whether to quit
func (a *App) handleLine(line string) bool {
	if cmd, ok := a.keys.Lookup(line); ok {
		a.logger.Debugf(logger.EventKeyBinding, "Key %q -> %s", line, cmd)
		return a.runCommand(cmd)
	}

	if a.ctrl.Status() == countdown.StatusRunning {
		a.logger.Debugf(logger.EventInputRejected, "Ignoring time input %q while running", line)
		return false
	}

	fields, err := validate.ParseClock(a.validator, line)
	if err != nil {
		a.logger.Debugf(logger.EventInputRejected, "Rejected input %q: %v", line, err)
		if errors.Is(err, validate.ErrPartCount) {
			a.presenter.ShowMessage(i18n.KeyUnknownKey)
		}
		return false
	}

	a.fields = fields
	a.presenter.ShowFields(fields.Hours, fields.Minutes, fields.Seconds)
	return false
}

func (a *App) runCommand(cmd keymap.Command) bool {
	switch cmd {
	case keymap.CommandToggle:
		a.Toggle()
	case keymap.CommandPowerOff:
		a.selectAction(countdown.ActionPowerOff)
	case keymap.CommandHibernate:
		a.selectAction(countdown.ActionHibernate)
	case keymap.CommandRestart:
		a.selectAction(countdown.ActionRestart)
	case keymap.CommandQuit:
		return true
	}
	return false
}

func (a *App) selectAction(action countdown.Action) {
	a.ctrl.SetAction(action)
	a.presenter.ShowAction(action)
}

// readLines forwards input lines until EOF or until done is closed
func readLines(r io.Reader, lines chan<- string, errs chan<- error, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
	errs <- scanner.Err()
}

// announcingExecutor prints what is about to happen and runs the real
// executor. The desktop notification is raised after dispatch and never
// delays the action.
type announcingExecutor struct {
	next      countdown.Executor
	presenter *Presenter
}

func (e *announcingExecutor) Execute(ctx context.Context, action countdown.Action) error {
	e.presenter.ShowFiring(action)
	err := e.next.Execute(ctx, action)
	e.presenter.NotifyFiring(ctx, action)
	return err
}
