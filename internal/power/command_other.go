//go:build !windows

package power

import (
	"os/exec"

	"github.com/smitstech/Shutdowner/internal/countdown"
)

const shutdownCommand = "systemctl"

var actionArgs = map[countdown.Action][]string{
	countdown.ActionPowerOff:  {"poweroff"},
	countdown.ActionHibernate: {"hibernate"},
	countdown.ActionRestart:   {"reboot"},
}

func hideWindow(cmd *exec.Cmd) {}
