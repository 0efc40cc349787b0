package server

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"fsbrowse/internal/logging"
)

const bootstrapURL = "https://unpkg.com/bootstrap@5.3.3/dist/css/bootstrap.min.css"

// ensureBootstrap fetches a local copy of the Bootstrap stylesheet so
// the UI works offline. Failures are logged at debug level and
// otherwise swallowed; the page falls back to a CDN.
func ensureBootstrap(staticDir string) {
	target := filepath.Join(staticDir, "bootstrap.min.css")
	if _, err := os.Stat(target); err == nil {
		return
	}

	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		logging.Debug("bootstrap fetch skipped", zap.Error(err))
		return
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(bootstrapURL)
	if err != nil {
		logging.Debug("bootstrap fetch failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Debug("bootstrap fetch failed", zap.Int("status", resp.StatusCode))
		return
	}

	f, err := os.Create(target)
	if err != nil {
		logging.Debug("bootstrap fetch failed", zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := f.ReadFrom(resp.Body); err != nil {
		logging.Debug("bootstrap fetch failed", zap.Error(err))
		os.Remove(target)
	}
}
