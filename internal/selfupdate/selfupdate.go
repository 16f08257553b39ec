// SPDX-License-Identifier: MPL-2.0

// Package selfupdate checks the GitHub Releases API for a newer published
// version. It only notifies; installing the update stays with the user, via
// the published install scripts.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	// RepoURL is the project home shown alongside update notices.
	RepoURL = "https://github.com/Julian-Bruyers/qrlan-cli"

	installShellURL      = "https://raw.githubusercontent.com/julian-bruyers/qrlan-cli/main/install.sh"
	installPowershellURL = "https://raw.githubusercontent.com/julian-bruyers/qrlan-cli/main/install.ps1"

	defaultBaseURL = "https://api.github.com"
	userAgent      = "qrlan-update-checker"

	// requestTimeout keeps the check from delaying the run noticeably; a
	// slow network simply means no notice this time.
	requestTimeout = 5 * time.Second

	// maxResponseBytes bounds the release JSON we are willing to read.
	maxResponseBytes = 1 << 20
)

// versionPattern extracts an X.Y.Z version from a release tag, tolerating a
// leading "v" and any prefix before the number.
var versionPattern = regexp.MustCompile(`v?(\d+\.\d+\.\d+)$`)

type (
	// Release is the subset of the GitHub release payload the checker uses.
	Release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}

	// Update describes an available newer version.
	Update struct {
		CurrentVersion string
		LatestVersion  string
		ReleaseURL     string
	}

	// Client queries the GitHub Releases API.
	Client struct {
		httpClient *http.Client
		baseURL    string
		owner      string
		repo       string
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(g *Client) { g.httpClient = c }
}

// WithBaseURL overrides the GitHub API base URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(g *Client) { g.baseURL = strings.TrimRight(base, "/") }
}

// NewClient returns a Client for the project's release feed.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		owner:      "Julian-Bruyers",
		repo:       "qrlan-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestRelease fetches the most recent published release.
func (c *Client) LatestRelease(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching latest release: unexpected status %s", resp.Status)
	}

	var release Release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding release response: %w", err)
	}
	return &release, nil
}

// Check compares the running version against the latest release and returns
// a non-nil Update when a newer major or minor version is published. Patch
// releases do not trigger a notice.
func (c *Client) Check(ctx context.Context, currentVersion string) (*Update, error) {
	current, ok := normalizeVersion(currentVersion)
	if !ok {
		return nil, fmt.Errorf("current version %q is not a release version", currentVersion)
	}

	release, err := c.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	latest, ok := normalizeVersion(release.TagName)
	if !ok {
		return nil, fmt.Errorf("release tag %q carries no version", release.TagName)
	}

	if semver.Compare(semver.MajorMinor(latest), semver.MajorMinor(current)) <= 0 {
		return nil, nil
	}
	return &Update{
		CurrentVersion: strings.TrimPrefix(current, "v"),
		LatestVersion:  strings.TrimPrefix(latest, "v"),
		ReleaseURL:     release.HTMLURL,
	}, nil
}

// InstallHint returns the one-line update command for the current platform.
func (u *Update) InstallHint() string {
	if runtime.GOOS == "windows" {
		return fmt.Sprintf("irm %s | iex", installPowershellURL)
	}
	return fmt.Sprintf("curl -sSL %s | sudo bash", installShellURL)
}

// normalizeVersion extracts an X.Y.Z version from a tag or version string
// and returns it in canonical "vX.Y.Z" form.
func normalizeVersion(s string) (string, bool) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	v := "v" + m[1]
	if !semver.IsValid(v) {
		return "", false
	}
	return v, true
}
