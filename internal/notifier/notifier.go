package notifier

import (
	"context"
	"os"
	"path/filepath"

	"github.com/smitstech/Shutdowner/internal/appinfo"
)

// Level selects how insistent a notification is
type Level int

const (
	// LevelInfo is a short, silent notice
	LevelInfo Level = iota
	// LevelAlert stays on screen longer and plays the reminder sound
	LevelAlert
)

// Notifier shows a transient message outside the console window.
// Implementations must give up when ctx is done.
type Notifier interface {
	Notify(ctx context.Context, level Level, title, message string) error
}

// Nop discards notifications
type Nop struct{}

func (Nop) Notify(ctx context.Context, level Level, title, message string) error {
	return nil
}

// New returns the platform notifier, or Nop when disabled or unsupported.
// iconPath may be empty.
func New(enabled bool, appID, iconPath string) Notifier {
	if !enabled {
		return Nop{}
	}
	return platformNotifier(appID, iconPath)
}

// LocateIcon returns the application icon shipped in dir, or "" when absent
func LocateIcon(dir string) string {
	path := filepath.Join(dir, appinfo.IconFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
