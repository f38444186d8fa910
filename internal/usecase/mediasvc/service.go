package mediasvc

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yourname/stream_lite/internal/models"
	"github.com/yourname/stream_lite/pkg/catalogclient"
)

type (
	// Service объединяет операции раздачи и диагностики медиафайлов.
	// Методы Stream* возвращают флаг "заголовки уже отправлены": пока он false,
	// вызывающий вправе ответить клиенту страницей ошибки.
	Service interface {
		StreamByName(ctx context.Context, w http.ResponseWriter, rawFilename, rangeHeader string) (headersSent bool, err error)
		StreamDirect(ctx context.Context, w http.ResponseWriter, relPath, rangeHeader string) (headersSent bool, err error)
		Probe(ctx context.Context, relPath string) (models.ProbeReport, error)
	}
)

type Deps struct {
	Catalog        catalogclient.Client
	Tokens         []models.CatalogToken
	MediaRoot      string
	ProbeHeadBytes int
	Logger         zerolog.Logger
}

type Media struct {
	Deps
}

// New конструирует сервис раздачи с заданными зависимостями.
func New(deps Deps) *Media {
	return &Media{Deps: deps}
}

var _ Service = (*Media)(nil)
