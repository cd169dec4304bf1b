//go:build windows

package notifier

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Show displays the toast notification using PowerShell.
// The PowerShell process is killed when ctx is done.
func (t *ToastNotification) Show(ctx context.Context) error {
	toastXMLContent, err := t.buildXML()
	if err != nil {
		return fmt.Errorf("failed to build toast XML: %w", err)
	}

	// Single quotes are the only thing to escape inside a single-quoted PowerShell string
	escapedXML := strings.ReplaceAll(toastXMLContent, "'", "''")

	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null

$APP_ID = '%s'
$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml('%s')
$toast = New-Object Windows.UI.Notifications.ToastNotification $xml
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier($APP_ID).Show($toast)
`, t.AppID, escapedXML)

	tmpFile, err := os.CreateTemp("", "shutdowner-toast-*.ps1")
	if err != nil {
		return fmt.Errorf("failed to create temp script file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	// PowerShell needs the BOM to read the Cyrillic strings as UTF-8
	bom := []byte{0xEF, 0xBB, 0xBF}
	if _, err := tmpFile.Write(bom); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write BOM: %w", err)
	}
	if _, err := tmpFile.WriteString(script); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write script: %w", err)
	}
	tmpFile.Close()

	cmd := exec.CommandContext(ctx, "powershell.exe", "-ExecutionPolicy", "Bypass", "-File", tmpFile.Name())
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to show toast notification: %w (output: %s)", err, string(output))
	}

	return nil
}

func platformNotifier(appID, iconPath string) Notifier {
	return &toastNotifier{appID: appID, iconPath: iconPath}
}

// toastNotifier shows notifications as Windows toasts
type toastNotifier struct {
	appID    string
	iconPath string
}

func (n *toastNotifier) Notify(ctx context.Context, level Level, title, message string) error {
	toast := newToast(n.appID, n.iconPath, level, title, message)
	if err := toast.Show(ctx); err != nil {
		return fmt.Errorf("failed to send toast notification: %w", err)
	}
	return nil
}
