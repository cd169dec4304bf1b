package notifier

import (
	"encoding/xml"
	"strings"
)

// ToastNotification represents a Windows toast notification
type ToastNotification struct {
	AppID    string
	Title    string
	Message  string
	IconPath string
	Audio    ToastAudio
	Duration ToastDuration
}

// ToastAudio represents the audio type for a toast
type ToastAudio string

const (
	AudioSilent   ToastAudio = "ms-winsoundevent:Notification.Default"
	AudioReminder ToastAudio = "ms-winsoundevent:Notification.Reminder"
)

// ToastDuration represents how long the toast should display
type ToastDuration string

const (
	DurationShort ToastDuration = "short"
	DurationLong  ToastDuration = "long"
)

// newToast builds the toast for a notification of the given level
func newToast(appID, iconPath string, level Level, title, message string) ToastNotification {
	toast := ToastNotification{
		AppID:    appID,
		Title:    title,
		Message:  message,
		IconPath: iconPath,
		Audio:    AudioSilent,
		Duration: DurationShort,
	}
	if level == LevelAlert {
		toast.Audio = AudioReminder
		toast.Duration = DurationLong
	}
	return toast
}

// toastXML represents the XML structure for Windows toast notifications
type toastXML struct {
	XMLName        xml.Name `xml:"toast"`
	ActivationType string   `xml:"activationType,attr,omitempty"`
	Duration       string   `xml:"duration,attr,omitempty"`
	Visual         visual   `xml:"visual"`
	Audio          *audio   `xml:"audio,omitempty"`
}

type visual struct {
	Binding binding `xml:"binding"`
}

type binding struct {
	Template string `xml:"template,attr"`
	Image    *image `xml:"image,omitempty"`
	Text     []text `xml:"text"`
}

type image struct {
	ID        string `xml:"id,attr,omitempty"`
	Src       string `xml:"src,attr"`
	Placement string `xml:"placement,attr,omitempty"`
}

type text struct {
	Value string `xml:",cdata"`
}

type audio struct {
	Src    string `xml:"src,attr,omitempty"`
	Silent bool   `xml:"silent,attr,omitempty"`
}

// buildXML creates the toast notification XML
func (t *ToastNotification) buildXML() (string, error) {
	toast := toastXML{
		ActivationType: "protocol",
		Duration:       string(t.Duration),
		Visual: visual{
			Binding: binding{
				Template: "ToastGeneric",
				Text: []text{
					{Value: t.Title},
					{Value: t.Message},
				},
			},
		},
	}

	if t.IconPath != "" {
		iconURI := t.IconPath
		if !strings.HasPrefix(iconURI, "file:///") && !strings.HasPrefix(iconURI, "http") {
			iconURI = "file:///" + strings.ReplaceAll(iconURI, "\\", "/")
		}
		toast.Visual.Binding.Image = &image{
			ID:        "1",
			Src:       iconURI,
			Placement: "appLogoOverride",
		}
	}

	if t.Audio == AudioSilent {
		toast.Audio = &audio{Silent: true}
	} else if t.Audio != "" {
		toast.Audio = &audio{Src: string(t.Audio)}
	}

	xmlData, err := xml.MarshalIndent(toast, "", "  ")
	if err != nil {
		return "", err
	}

	return xml.Header + string(xmlData), nil
}
