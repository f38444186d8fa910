package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_YamlWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
listen_addr: ":8080"
media_root: /srv/media
catalog_url: http://catalog.local
catalog_tokens:
  - token: show
    key: shows
  - token: movie
    key: movies
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MEDIA_ROOT", "/mnt/override")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("listen_addr %q", cfg.ListenAddr)
	}
	if cfg.MediaRoot != "/mnt/override" {
		t.Fatalf("env override lost: %q", cfg.MediaRoot)
	}
	if len(cfg.CatalogTokens) != 2 || cfg.CatalogTokens[0].Key != "shows" {
		t.Fatalf("tokens %+v", cfg.CatalogTokens)
	}
	if cfg.ProbeHeadBytes != 64 {
		t.Fatalf("probe_head_bytes default %d", cfg.ProbeHeadBytes)
	}
}

func TestParseTokens(t *testing.T) {
	got := parseTokens("show=shows, movie , =bad ,")
	if len(got) != 3 {
		t.Fatalf("tokens %+v", got)
	}
	if got[0].Token != "show" || got[0].Key != "shows" {
		t.Fatalf("tokens %+v", got)
	}
	// Токен без ключа отображается сам в себя.
	if got[1].Token != "movie" || got[1].Key != "movie" {
		t.Fatalf("tokens %+v", got)
	}
}
