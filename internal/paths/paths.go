// Package paths lays out the per-instance data directories under
// ~/.dmsync (or $DMSYNC_HOME).
package paths

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the base directory.
const HomeEnv = "DMSYNC_HOME"

// BaseDir returns $DMSYNC_HOME, or ~/.dmsync.
func BaseDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dmsync")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// Dir returns the instance directory.
func Dir(instance string) string {
	return filepath.Join(BaseDir(), "instances", instance)
}

// SocketPath returns the gRPC unix socket of an instance.
func SocketPath(instance string) string {
	return filepath.Join(Dir(instance), "dmsyncd.sock")
}

// SQLitePath returns the SQLite database of an instance.
func SQLitePath(instance string) string {
	return filepath.Join(Dir(instance), "dmsync.db")
}

// PebbleDir returns the Pebble data directory of an instance.
func PebbleDir(instance string) string {
	return filepath.Join(Dir(instance), "kv")
}

// LogDir returns the log directory of an instance.
func LogDir(instance string) string {
	return filepath.Join(Dir(instance), "logs")
}

// LogPath returns the daemon log file.
func LogPath(instance string) string {
	return filepath.Join(LogDir(instance), "dmsyncd.log")
}

// EnsureDir creates the instance directory tree, owner-only.
func EnsureDir(instance string) error {
	for _, d := range []string{Dir(instance), LogDir(instance)} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
