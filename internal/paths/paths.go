package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "git-statusline"

// GetHome returns GIT_STATUSLINE_HOME or the ~/.git-statusline default
func GetHome() string {
	home := os.Getenv("GIT_STATUSLINE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "." + appName
		}
		return filepath.Join(homeDir, "."+appName)
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $GIT_STATUSLINE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetLogDir returns the OS-specific log directory
func GetLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		// ~/Library/Logs/git-statusline
		return filepath.Join(homeDir, "Library", "Logs", appName), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, appName), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "logs"), nil
	default:
		return filepath.Join(GetHome(), "logs"), nil
	}
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
