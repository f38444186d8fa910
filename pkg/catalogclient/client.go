package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yourname/stream_lite/internal/models"
	"github.com/yourname/stream_lite/pkg/streamproto"
)

type Client interface {
	// Lookup Запросить у каталога записи контента по базовому имени
	Lookup(ctx context.Context, baseName string) ([]models.ContentRecord, error)
}

type httpClient struct {
	c    *http.Client
	base string
}

// New создаёт HTTP-клиент каталога контента.
func New(baseURL string) Client {
	return &httpClient{
		c:    &http.Client{Timeout: 10 * time.Second},
		base: baseURL,
	}
}

// Lookup выполняет GET /image-content?image_name=<baseName> и разбирает массив записей.
func (h *httpClient) Lookup(ctx context.Context, baseName string) ([]models.ContentRecord, error) {
	u := fmt.Sprintf(streamproto.CatalogLookupFormat, h.base, url.QueryEscape(baseName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: catalog answered %s", models.ErrUpstream, resp.Status)
	}

	var records []models.ContentRecord
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode catalog response: %v", models.ErrUpstream, err)
	}

	return records, nil
}
