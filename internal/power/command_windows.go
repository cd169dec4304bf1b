//go:build windows

package power

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/smitstech/Shutdowner/internal/countdown"
)

const shutdownCommand = "shutdown"

var actionArgs = map[countdown.Action][]string{
	countdown.ActionPowerOff:  {"/s"},
	countdown.ActionHibernate: {"/h"},
	countdown.ActionRestart:   {"/r"},
}

// hideWindow keeps shutdown.exe from flashing a console window
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
