package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanlex.yaml")
	body := "stopwords_path: /data/stop.txt\ntop_n: 25\nentity_tags: [nr, ns, nt]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.StopwordsPath != "/data/stop.txt" {
		t.Errorf("StopwordsPath = %q", cfg.StopwordsPath)
	}
	if cfg.TopN != 25 {
		t.Errorf("TopN = %d, want 25", cfg.TopN)
	}
	if !reflect.DeepEqual(cfg.EntityTags, []string{"nr", "ns", "nt"}) {
		t.Errorf("EntityTags = %v", cfg.EntityTags)
	}
	// Untouched keys keep their defaults.
	if cfg.UserDictPath != DefaultConfig().UserDictPath {
		t.Errorf("UserDictPath = %q, want default", cfg.UserDictPath)
	}
}

func TestLoadConfigMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanlex.yaml")
	if err := os.WriteFile(path, []byte("top_n: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanlex.yaml")
	if err := os.WriteFile(path, []byte("stopwords_path: from_file.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HANLEX_STOPWORDS", "from_env.txt")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StopwordsPath != "from_env.txt" {
		t.Errorf("StopwordsPath = %q, want env override", cfg.StopwordsPath)
	}
}

func TestLoadConfigRejectsNonPositiveTopN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanlex.yaml")
	if err := os.WriteFile(path, []byte("top_n: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("top_n of 0 should error")
	}
}
