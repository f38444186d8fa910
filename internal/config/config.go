package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourname/stream_lite/internal/models"
)

const defaultProbeHeadBytes = 64

type Config struct {
	ListenAddr     string                `yaml:"listen_addr" json:"listen_addr"`
	MediaRoot      string                `yaml:"media_root" json:"media_root"`
	CatalogURL     string                `yaml:"catalog_url" json:"catalog_url"`
	UpstreamURL    string                `yaml:"upstream_url" json:"upstream_url"`
	ProbeHeadBytes int                   `yaml:"probe_head_bytes" json:"probe_head_bytes"`
	CatalogTokens  []models.CatalogToken `yaml:"catalog_tokens" json:"catalog_tokens"`
}

// Load читает YAML-конфигурацию, применяет ENV-переопределения и возвращает актуальную структуру.
func Load() (*Config, error) {
	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	// ENV override
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("MEDIA_ROOT"); v != "" {
		c.MediaRoot = v
	}
	if v := os.Getenv("CATALOG_URL"); v != "" {
		c.CatalogURL = v
	}
	if v := os.Getenv("UPSTREAM_URL"); v != "" {
		c.UpstreamURL = v
	}
	if v := os.Getenv("CATALOG_TOKENS"); v != "" {
		c.CatalogTokens = parseTokens(v)
	}

	if c.ProbeHeadBytes <= 0 {
		c.ProbeHeadBytes = defaultProbeHeadBytes
	}

	return &c, nil
}

// parseTokens разбирает строку вида "token=key,token2=key2" из переменной окружения.
// Токен без явного ключа отображается сам в себя.
func parseTokens(s string) []models.CatalogToken {
	var out []models.CatalogToken
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		token, key, found := strings.Cut(p, "=")
		if !found {
			key = token
		}
		out = append(out, models.CatalogToken{Token: token, Key: key})
	}

	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
