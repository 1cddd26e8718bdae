package cli

import (
	"os"
	"strings"
	"testing"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.APIURL != "http://localhost:8080" {
		t.Errorf("expected default API URL, got %q", config.APIURL)
	}
	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := &Config{
		APIURL: "https://gambit.example.com",
		Token:  "test-token",
	}
	if err := SaveConfig(saved); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.APIURL != saved.APIURL {
		t.Errorf("expected API URL %q, got %q", saved.APIURL, loaded.APIURL)
	}
	if loaded.Token != saved.Token {
		t.Errorf("expected token %q, got %q", saved.Token, loaded.Token)
	}

	// The saved token grants API access; the file must not be world-readable
	info, err := os.Stat(GetConfigFilePath())
	if err != nil {
		t.Fatalf("stat config file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected file mode 0600, got %v", info.Mode().Perm())
	}
}

func TestGetConfigFilePath_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path := GetConfigFilePath()
	if !strings.HasPrefix(path, "/tmp/custom-config") {
		t.Errorf("expected path under XDG_CONFIG_HOME, got %q", path)
	}
	if !strings.HasSuffix(path, "gambit/gambit.toml") {
		t.Errorf("expected gambit/gambit.toml suffix, got %q", path)
	}
}
