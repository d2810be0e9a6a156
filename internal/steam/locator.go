package steam

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gtaradio/internal/logging"
)

// AppIDGTAV is Steam's application id for Grand Theft Auto V.
const AppIDGTAV = "271590"

// ErrNoInstallation indicates the requested app could not be located in any
// Steam library folder.
var ErrNoInstallation = errors.New("steam installation not found")

// Locator finds locally installed Steam applications by reading Steam's
// on-disk manifests.
type Locator struct {
	logger *slog.Logger

	// rootOverride skips platform root discovery when set (config or tests).
	rootOverride string
}

// Option configures the locator.
type Option func(*Locator)

// WithRoot pins the Steam root instead of discovering it.
func WithRoot(root string) Option {
	return func(l *Locator) {
		l.rootOverride = root
	}
}

// NewLocator constructs a locator. A nil logger is replaced with a no-op one.
func NewLocator(logger *slog.Logger, opts ...Option) *Locator {
	locator := &Locator{logger: logging.NewComponentLogger(logger, "steam")}
	for _, opt := range opts {
		opt(locator)
	}
	return locator
}

// Root returns the Steam installation root for this machine.
func (l *Locator) Root() (string, error) {
	if l.rootOverride != "" {
		if info, err := os.Stat(l.rootOverride); err == nil && info.IsDir() {
			return l.rootOverride, nil
		}
		return "", fmt.Errorf("configured steam root %s is not a directory", l.rootOverride)
	}
	root, err := platformRoot()
	if err != nil {
		l.logger.Debug("steam root not found", logging.Error(err))
		return "", err
	}
	return root, nil
}

// LibraryFolders returns the deduplicated set of Steam library roots: the
// Steam root itself plus every "path" entry in libraryfolders.vdf. A missing
// or unreadable manifest degrades to the root alone.
func (l *Locator) LibraryFolders(root string) []string {
	folders := []string{root}

	manifest := filepath.Join(root, "steamapps", "libraryfolders.vdf")
	content, err := os.ReadFile(manifest)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("could not read library manifest", logging.String("path", manifest), logging.Error(err))
		}
		return folders
	}

	seen := map[string]struct{}{root: {}}
	for _, path := range extractValues(string(content), "path") {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		folders = append(folders, path)
	}
	return folders
}

// FindApp locates the install directory for the given app id by checking
// each library folder's appmanifest. Unreadable or malformed manifests are
// skipped; the first candidate that exists on disk wins.
func (l *Locator) FindApp(appID string, folders []string) (string, error) {
	manifestName := fmt.Sprintf("appmanifest_%s.acf", appID)
	for _, folder := range folders {
		manifest := filepath.Join(folder, "steamapps", manifestName)
		content, err := os.ReadFile(manifest)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				l.logger.Warn("could not read app manifest", logging.String("path", manifest), logging.Error(err))
			}
			continue
		}
		installDir, ok := extractValue(string(content), "installdir")
		if !ok {
			l.logger.Warn("app manifest missing installdir", logging.String("path", manifest))
			continue
		}
		candidate := filepath.Join(folder, "steamapps", "common", installDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		l.logger.Debug("install directory from manifest does not exist", logging.String("path", candidate))
	}
	return "", fmt.Errorf("%w: app %s", ErrNoInstallation, appID)
}

// Locate runs the full discovery chain for one app id.
func (l *Locator) Locate(appID string) (string, error) {
	root, err := l.Root()
	if err != nil {
		return "", err
	}
	l.logger.Info("steam root found", logging.String("path", root))
	return l.FindApp(appID, l.LibraryFolders(root))
}
