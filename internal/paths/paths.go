package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the application's XDG subdirectories.
const AppName = "oaslint"

// ConfigDirEnv overrides ConfigDir when set.
const ConfigDirEnv = "OASLINT_CONFIG_DIR"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ConfigHome returns the XDG config home (e.g. ~/.config).
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the oaslint configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used. It returns nil if the directory exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
