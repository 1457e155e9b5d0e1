// Package update checks the release endpoint for new versions and downloads
// verified installers into a staging directory.
package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/httpclient"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/version"
)

// Release describes an available release as reported by the release endpoint.
type Release struct {
	Version string `json:"version"`
	URL     string `json:"url"`
	SHA256  string `json:"sha256"`
	Notes   string `json:"notes"`
}

// Updater polls for new releases and stages downloads.
type Updater struct {
	httpClient *nethttp.Client
	baseURL    string
	channel    string
	current    string
	stagingDir string
	bus        *events.EventBus
	logger     *logging.Logger
}

// NewUpdater creates an updater checking the given API base URL on the given
// release channel ("stable" or "beta").
func NewUpdater(baseURL, channel string, bus *events.EventBus, logger *logging.Logger) *Updater {
	if baseURL == "" {
		baseURL = constants.DefaultDashboardURL
	}
	return &Updater{
		httpClient: httpclient.New(logger, constants.HTTPTimeout),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		channel:    channel,
		current:    version.Version,
		stagingDir: filepath.Join(os.TempDir(), "restmode-update"),
		bus:        bus,
		logger:     logger,
	}
}

// Check queries the release endpoint. Returns the release when one newer than
// the running version is available, or nil when already up to date.
func (u *Updater) Check(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/releases/latest?channel=%s&os=%s&arch=%s",
		u.baseURL, u.channel, runtime.GOOS, runtime.GOARCH)

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build update request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("update check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == nethttp.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("release endpoint returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}

	if !IsNewer(release.Version, u.current) {
		return nil, nil
	}
	return &release, nil
}

// Download fetches the release into the staging directory and verifies its
// SHA-256 checksum. The downloaded file is removed on any verification
// failure. Returns the staged file path.
func (u *Updater) Download(ctx context.Context, release *Release) (string, error) {
	if release.URL == "" {
		return "", fmt.Errorf("release has no download URL")
	}
	if err := os.MkdirAll(u.stagingDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, release.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	dest := filepath.Join(u.stagingDir, filepath.Base(release.URL))
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}

	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, hasher), resp.Body); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to close staged file: %w", err)
	}

	if release.SHA256 != "" {
		got := hex.EncodeToString(hasher.Sum(nil))
		if !strings.EqualFold(got, release.SHA256) {
			os.Remove(dest)
			return "", fmt.Errorf("checksum mismatch: expected %s, got %s", release.SHA256, got)
		}
	}

	u.logger.Info().Str("version", release.Version).Str("path", dest).Msg("Update staged")
	return dest, nil
}

// Run checks for updates on an interval until ctx is cancelled, publishing an
// EventUpdateAvailable for each newer release found. Check failures are
// logged; network flakiness must never surface to the user.
func (u *Updater) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	u.checkAndPublish(ctx)

	for {
		select {
		case <-ticker.C:
			u.checkAndPublish(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (u *Updater) checkAndPublish(ctx context.Context) {
	release, err := u.Check(ctx)
	if err != nil {
		u.logger.Warn().Err(err).Msg("Update check failed")
		return
	}
	if release == nil {
		return
	}
	u.logger.Info().Str("version", release.Version).Msg("Update available")
	if u.bus != nil {
		u.bus.Publish(events.NewUpdateAvailable(release.Version, release.URL))
	}
}

// IsNewer reports whether candidate is a strictly newer semantic version than
// current. Malformed versions compare as not newer.
func IsNewer(candidate, current string) bool {
	cand, ok := parseVersion(candidate)
	if !ok {
		return false
	}
	cur, ok := parseVersion(current)
	if !ok {
		return true // running a dev build, any well-formed release wins
	}
	for i := 0; i < 3; i++ {
		if cand[i] != cur[i] {
			return cand[i] > cur[i]
		}
	}
	return false
}

// parseVersion parses "v1.2.3" or "1.2.3" into major/minor/patch.
// Pre-release suffixes after "-" are ignored.
func parseVersion(v string) ([3]int, bool) {
	var out [3]int
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return out, false
		}
		out[i] = n
	}
	return out, true
}
