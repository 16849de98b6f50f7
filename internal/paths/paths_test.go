package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLayout(t *testing.T) {
	base := t.TempDir()
	t.Setenv(HomeEnv, base)

	tests := []struct {
		got, want string
	}{
		{ConfigPath(), filepath.Join(base, "config.toml")},
		{Dir("main"), filepath.Join(base, "instances", "main")},
		{SocketPath("main"), filepath.Join(base, "instances", "main", "dmsyncd.sock")},
		{SQLitePath("main"), filepath.Join(base, "instances", "main", "dmsync.db")},
		{PebbleDir("main"), filepath.Join(base, "instances", "main", "kv")},
		{LogPath("main"), filepath.Join(base, "instances", "main", "logs", "dmsyncd.log")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestDefaultBaseDir(t *testing.T) {
	t.Setenv(HomeEnv, "")
	if !strings.HasSuffix(BaseDir(), ".dmsync") {
		t.Errorf("BaseDir() = %q, want suffix .dmsync", BaseDir())
	}
}

func TestEnsureDir(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	if err := EnsureDir("test"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(LogDir("test"))
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if !info.IsDir() || info.Mode().Perm() != 0700 {
		t.Errorf("log dir mode = %v", info.Mode())
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "main", false},
		{"valid with numbers", "work123", false},
		{"valid with hyphen", "my-instance", false},
		{"valid with underscore", "my_instance", false},
		{"valid max length", strings.Repeat("a", 64), false},
		{"empty", "", true},
		{"uppercase", "Main", true},
		{"dot", "my.instance", true},
		{"too long", strings.Repeat("a", 65), true},
		{"slash", "my/instance", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("work", "home"); got != "work" {
		t.Errorf("flag ignored: %q", got)
	}
	if got := Resolve("", "home"); got != "home" {
		t.Errorf("configured default ignored: %q", got)
	}
	if got := Resolve("", ""); got != DefaultInstance {
		t.Errorf("fallback = %q", got)
	}
}
