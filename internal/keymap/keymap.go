package keymap

import (
	"strings"
)

// Command is a logical action a key can trigger
type Command int

const (
	CommandToggle Command = iota // Start when idle, stop when running
	CommandPowerOff
	CommandHibernate
	CommandRestart
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandToggle:
		return "toggle"
	case CommandPowerOff:
		return "poweroff"
	case CommandHibernate:
		return "hibernate"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Special key names
const (
	KeyEnter  = "enter"
	KeyEscape = "esc"
)

// Binding maps a set of keys to one command
type Binding struct {
	Command Command
	Keys    []string
}

// DefaultBindings lists the Latin key for each command followed by the key
// in the same physical position on a Ukrainian/Russian layout.
var DefaultBindings = []Binding{
	{Command: CommandToggle, Keys: []string{KeyEnter, "s", "ы", "і"}},
	{Command: CommandPowerOff, Keys: []string{"p", "з"}},
	{Command: CommandHibernate, Keys: []string{"h", "р"}},
	{Command: CommandRestart, Keys: []string{"r", "к"}},
	{Command: CommandQuit, Keys: []string{KeyEscape, "q", "й"}},
}

// Map resolves keys to commands
type Map struct {
	keys map[string]Command
}

// New builds a Map from bindings. A key bound twice keeps its first command.
func New(bindings []Binding) *Map {
	m := &Map{keys: make(map[string]Command)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			k = normalize(k)
			if _, exists := m.keys[k]; !exists {
				m.keys[k] = b.Command
			}
		}
	}
	return m
}

// Default returns the Map for DefaultBindings
func Default() *Map {
	return New(DefaultBindings)
}

// Lookup returns the command bound to key. Matching ignores case and
// surrounding whitespace; an empty key is Enter and "\x1b" is Escape.
func (m *Map) Lookup(key string) (Command, bool) {
	cmd, ok := m.keys[normalize(key)]
	return cmd, ok
}

func normalize(key string) string {
	switch key {
	case "", "\r", "\n", "\r\n":
		return KeyEnter
	case "\x1b":
		return KeyEscape
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return KeyEnter
	}
	return strings.ToLower(key)
}
