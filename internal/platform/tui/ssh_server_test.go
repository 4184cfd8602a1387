package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveHostKeyPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")
	want := filepath.Join(dir, "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("key directory should be created")
	}
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join(home, ".snake", "host_key"); got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if !srv.config.Bell {
		t.Error("bell should be on by default")
	}
}

func TestNewSSHServerFillsDefaults(t *testing.T) {
	srv, err := NewSSHServer(SSHServerConfig{
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}

	def := DefaultSSHServerConfig()
	if srv.Addr() != def.Address {
		t.Errorf("Addr() = %q, expected default %q", srv.Addr(), def.Address)
	}
	if srv.config.Theme != def.Theme {
		t.Errorf("theme = %+v, expected default %+v", srv.config.Theme, def.Theme)
	}
}
