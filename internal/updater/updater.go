package updater

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/creativeprojects/go-selfupdate"

	"github.com/smitstech/Shutdowner/internal/appinfo"
	"github.com/smitstech/Shutdowner/internal/version"
)

// ErrNoUpdate is returned by Apply when the running build is already current
var ErrNoUpdate = errors.New("no update available")

// UpdateInfo contains information about an available update
type UpdateInfo struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseNotes    string
	ReleaseURL      string
	DownloadURL     string
	UpdateAvailable bool
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source: source,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}
	return updater, nil
}

// currentVersion returns the running version without its 'v' prefix.
// Unreleased builds report 0.0.0 so any published release counts as newer.
func currentVersion() string {
	if version.IsDev() {
		return "0.0.0"
	}
	return strings.TrimPrefix(version.Version, "v")
}

func detectLatest(ctx context.Context) (*selfupdate.Updater, *selfupdate.Release, bool, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, nil, false, err
	}

	slug := selfupdate.ParseSlug(appinfo.RepoOwner + "/" + appinfo.RepoName)
	latest, found, err := updater.DetectLatest(ctx, slug)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to detect latest version: %w", err)
	}
	return updater, latest, found, nil
}

// CheckForUpdate checks GitHub for a newer version
func CheckForUpdate(ctx context.Context) (*UpdateInfo, error) {
	_, latest, found, err := detectLatest(ctx)
	if err != nil {
		return nil, err
	}

	info := &UpdateInfo{
		CurrentVersion:  version.Version,
		UpdateAvailable: false,
	}

	if !found {
		return info, nil
	}

	info.LatestVersion = latest.Version()
	info.ReleaseNotes = latest.ReleaseNotes
	info.ReleaseURL = latest.URL
	info.DownloadURL = latest.AssetURL
	info.UpdateAvailable = latest.GreaterThan(currentVersion())

	return info, nil
}

// Apply replaces the running executable with the latest release.
// It returns the installed version, or ErrNoUpdate when already current.
func Apply(ctx context.Context) (string, error) {
	updater, latest, found, err := detectLatest(ctx)
	if err != nil {
		return "", err
	}
	if !found || !latest.GreaterThan(currentVersion()) {
		return "", ErrNoUpdate
	}

	exePath, err := selfupdate.ExecutablePath()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := updater.UpdateTo(ctx, latest, exePath); err != nil {
		return "", fmt.Errorf("failed to update %s: %w", exePath, err)
	}
	return latest.Version(), nil
}
