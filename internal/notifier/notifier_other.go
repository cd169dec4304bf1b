//go:build !windows

package notifier

func platformNotifier(appID, iconPath string) Notifier {
	return Nop{}
}
