//go:build windows

package steam

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"
)

// platformRoot reads Steam's install path from the per-user registry key.
func platformRoot() (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open steam registry key: %w", err)
	}
	defer key.Close()

	path, _, err := key.GetStringValue("SteamPath")
	if err != nil {
		return "", fmt.Errorf("read SteamPath value: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", errors.New("registry SteamPath does not point at a directory")
	}
	return path, nil
}
