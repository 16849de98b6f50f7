package cmd

import (
	"path/filepath"
	"testing"

	"github.com/matheus3301/dmsync/internal/config"
	"github.com/matheus3301/dmsync/internal/paths"
)

func TestSocketPathResolution(t *testing.T) {
	home := t.TempDir()
	t.Setenv(paths.HomeEnv, home)
	t.Cleanup(func() { instanceFlag = "" })

	instanceFlag = ""
	got, err := socketPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "instances", "main", "dmsyncd.sock"); got != want {
		t.Errorf("default socketPath() = %q, want %q", got, want)
	}

	cfg := config.Default()
	cfg.DefaultInstance = "work"
	if err := config.Save(paths.ConfigPath(), cfg); err != nil {
		t.Fatal(err)
	}
	if got, _ := socketPath(); got != paths.SocketPath("work") {
		t.Errorf("configured socketPath() = %q", got)
	}

	instanceFlag = "other"
	if got, _ := socketPath(); got != paths.SocketPath("other") {
		t.Errorf("flag socketPath() = %q", got)
	}

	instanceFlag = "Bad Name"
	if _, err := socketPath(); err == nil {
		t.Error("socketPath() should reject an invalid instance name")
	}
}

func TestDialRequiresUser(t *testing.T) {
	old := userFlag
	userFlag = ""
	t.Cleanup(func() { userFlag = old })
	if _, err := dial(true); err == nil {
		t.Error("dial(true) without a user should fail")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"send", "edit", "delete", "history", "read", "inbox", "unread", "users", "status", "open", "watch", "online"}
	for _, name := range want {
		if c, _, err := rootCmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
