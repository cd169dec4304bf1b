package appinfo

// Application identity constants
const (
	// Name is the display name of the application
	Name = "Shutdowner"

	// EventSource is the Windows Event Log source name
	EventSource = "Shutdowner"

	// AppID identifies the application to the Windows notification center
	AppID = "Shutdowner"

	// IconFileName is the toast icon looked up next to the executable
	IconFileName = "Shutdowner.png"

	// RepoOwner and RepoName locate the GitHub releases used for updates
	RepoOwner = "smitstech"
	RepoName  = "Shutdowner"
)
