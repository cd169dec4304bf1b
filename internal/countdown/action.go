package countdown

import (
	"fmt"
	"strings"
)

// Status represents the controller state
type Status int

const (
	StatusIdle    Status = iota // No countdown armed
	StatusRunning               // Counting down towards finishAt
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Action is the terminal action performed when the countdown reaches zero
type Action int

const (
	ActionPowerOff Action = iota
	ActionHibernate
	ActionRestart
)

// DefaultAction is selected when the application starts
const DefaultAction = ActionHibernate

func (a Action) String() string {
	switch a {
	case ActionPowerOff:
		return "poweroff"
	case ActionHibernate:
		return "hibernate"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the three terminal actions
func (a Action) Valid() bool {
	return a >= ActionPowerOff && a <= ActionRestart
}

// ParseAction converts a user-supplied name to an Action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poweroff", "power-off", "power_off", "shutdown":
		return ActionPowerOff, nil
	case "hibernate":
		return ActionHibernate, nil
	case "restart", "reboot":
		return ActionRestart, nil
	default:
		return DefaultAction, fmt.Errorf("unknown action %q (want poweroff, hibernate or restart)", s)
	}
}
