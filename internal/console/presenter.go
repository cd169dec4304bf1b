package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/smitstech/Shutdowner/internal/countdown"
	"github.com/smitstech/Shutdowner/internal/i18n"
	"github.com/smitstech/Shutdowner/internal/logger"
	"github.com/smitstech/Shutdowner/internal/notifier"
)

// notifyTimeout bounds notifications raised outside the firing path
const notifyTimeout = 10 * time.Second

// Logger interface for presenter logging
type Logger interface {
	Warningf(eventID uint32, format string, args ...interface{})
}

// Presenter renders controller output on a terminal.
// On an interactive terminal the remaining time is redrawn in place.
// Like the controller it is driven from the event loop goroutine only.
type Presenter struct {
	out      io.Writer
	catalog  i18n.Catalog
	notifier notifier.Notifier
	logger   Logger
	title    string
	inPlace  bool

	lastTick int // width of the line being redrawn, 0 when none
}

// NewPresenter creates a presenter writing to out. Text is looked up in catalog.
func NewPresenter(out io.Writer, catalog i18n.Catalog, n notifier.Notifier, log Logger, title string) *Presenter {
	if n == nil {
		n = notifier.Nop{}
	}
	return &Presenter{
		out:      out,
		catalog:  catalog,
		notifier: n,
		logger:   log,
		title:    title,
		inPlace:  isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// OnTick shows the remaining time
func (p *Presenter) OnTick(remaining string) {
	line := fmt.Sprintf("%s: %s", p.catalog.Get(i18n.KeyTimeLeft), remaining)
	if !p.inPlace {
		fmt.Fprintln(p.out, line)
		return
	}

	// Pad so a shorter line fully covers the previous one
	pad := p.lastTick - len([]rune(line))
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.out, "\r%s%s", line, strings.Repeat(" ", pad))
	p.lastTick = len([]rune(line))
}

// OnStateChanged shows which operation the toggle key now performs
func (p *Presenter) OnStateChanged(status countdown.Status) {
	p.endTickLine()
	switch status {
	case countdown.StatusRunning:
		fmt.Fprintf(p.out, "[s] %s\n", p.catalog.Get(i18n.KeyStop))
	case countdown.StatusIdle:
		fmt.Fprintf(p.out, "[s] %s\n", p.catalog.Get(i18n.KeyStart))
	}
}

// OnValidationRejected reports refused input in the console and as a notification
func (p *Presenter) OnValidationRejected(messageKey string) {
	msg := p.catalog.Get(messageKey)
	p.endTickLine()
	fmt.Fprintf(p.out, "! %s\n", msg)

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	p.notify(ctx, notifier.LevelInfo, msg)
}

// ShowAction prints the selected terminal action
func (p *Presenter) ShowAction(action countdown.Action) {
	p.endTickLine()
	fmt.Fprintf(p.out, "%s: %s\n", p.catalog.Get(i18n.KeyMode), p.ActionLabel(action))
}

// ShowFields echoes the time the next start will use
func (p *Presenter) ShowFields(h, m, s string) {
	p.endTickLine()
	fmt.Fprintf(p.out, "%s: %s:%s:%s\n", p.catalog.Get(i18n.KeyTimeEntered),
		orPlaceholder(h, p.catalog.Get(i18n.KeyHours)),
		orPlaceholder(m, p.catalog.Get(i18n.KeyMinutes)),
		orPlaceholder(s, p.catalog.Get(i18n.KeySeconds)))
}

// ShowFiring announces on the console that the action is being dispatched
func (p *Presenter) ShowFiring(action countdown.Action) {
	p.endTickLine()
	fmt.Fprintln(p.out, p.firingMessage(action))
}

// NotifyFiring raises the alert-level notification for a fired action
func (p *Presenter) NotifyFiring(ctx context.Context, action countdown.Action) {
	p.notify(ctx, notifier.LevelAlert, p.firingMessage(action))
}

func (p *Presenter) firingMessage(action countdown.Action) string {
	return fmt.Sprintf("%s: %s", p.catalog.Get(i18n.KeyFiring), p.ActionLabel(action))
}

// notify shows msg outside the console; failures are only logged
func (p *Presenter) notify(ctx context.Context, level notifier.Level, msg string) {
	if err := p.notifier.Notify(ctx, level, p.title, msg); err != nil {
		p.logger.Warningf(logger.EventNotificationError, "Failed to show notification %q: %v", msg, err)
	}
}

// ShowMessage prints a localized message on its own line
func (p *Presenter) ShowMessage(key string) {
	p.endTickLine()
	fmt.Fprintln(p.out, p.catalog.Get(key))
}

// ActionLabel returns the localized name of action
func (p *Presenter) ActionLabel(action countdown.Action) string {
	switch action {
	case countdown.ActionPowerOff:
		return p.catalog.Get(i18n.KeyPowerOff)
	case countdown.ActionRestart:
		return p.catalog.Get(i18n.KeyRestart)
	default:
		return p.catalog.Get(i18n.KeyHibernate)
	}
}

// endTickLine moves past an in-place tick line
func (p *Presenter) endTickLine() {
	if p.inPlace && p.lastTick > 0 {
		fmt.Fprintln(p.out)
	}
	p.lastTick = 0
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
