package nodeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yourname/stream_lite/internal/models"
	"github.com/yourname/stream_lite/pkg/streamproto"
)

type Client interface {
	// Fetch Достать видеопоток с узла, пробросив Range как есть.
	// Закрыть тело ответа обязан вызывающий.
	Fetch(ctx context.Context, rawQuery, rangeHeader string) (*http.Response, error)
	// Health Опросить health-эндпоинт узла
	Health(ctx context.Context) (NodeHealth, error)
}

// NodeHealth — payload ответа /health стримингового узла.
type NodeHealth struct {
	OK         bool  `json:"ok"`
	TotalBytes int64 `json:"total_bytes"`
}

type httpClient struct {
	c    *http.Client
	base string
}

// New создаёт клиент стримингового узла. Таймаут на весь поток не ставим:
// раздача длинного видео живёт дольше любого разумного фиксированного лимита,
// обрыв контролируется контекстом запроса.
func New(baseURL string) Client {
	return &httpClient{
		c:    &http.Client{},
		base: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch выполняет GET /videos/direct с исходной query-строкой и заголовком Range.
func (h *httpClient) Fetch(ctx context.Context, rawQuery, rangeHeader string) (*http.Response, error) {
	u := fmt.Sprintf(streamproto.DirectPathFormat, h.base)
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if rangeHeader != "" {
		req.Header.Set(streamproto.HeaderRange, rangeHeader)
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	// 200 и 206 — штатные ответы; редиректы http.Client уже прошёл сам.
	// Всё от 400 и выше — ошибка апстрима, статус сохраняем в тексте.
	if resp.StatusCode >= http.StatusBadRequest {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: node answered %s", models.ErrUpstream, resp.Status)
	}

	return resp, nil
}

var healthHTTPClient = &http.Client{Timeout: 2 * time.Second}

// Health опрашивает /health узла и возвращает распарсенный payload.
func (h *httpClient) Health(ctx context.Context) (NodeHealth, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+"/health", nil)
	if err != nil {
		return NodeHealth{}, err
	}

	resp, err := healthHTTPClient.Do(req)
	if err != nil {
		return NodeHealth{}, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NodeHealth{}, fmt.Errorf("%w: health check failed: %s", models.ErrUpstream, resp.Status)
	}

	var payload NodeHealth
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return NodeHealth{}, err
	}

	return payload, nil
}
