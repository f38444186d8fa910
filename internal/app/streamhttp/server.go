package streamhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yourname/stream_lite/internal/config"
	"github.com/yourname/stream_lite/internal/usecase/mediasvc"
	"github.com/yourname/stream_lite/pkg/catalogclient"
)

// Server serves the streaming node HTTP API on top of the local filesystem.
type Server struct {
	Media     mediasvc.Service
	MediaRoot string
	Log       zerolog.Logger
}

// NewServer конструктор
func NewServer(cfg *config.Config, log zerolog.Logger) (http.Handler, *Server) {
	media := mediasvc.New(mediasvc.Deps{
		Catalog:        catalogclient.New(cfg.CatalogURL),
		Tokens:         cfg.CatalogTokens,
		MediaRoot:      cfg.MediaRoot,
		ProbeHeadBytes: cfg.ProbeHeadBytes,
		Logger:         log,
	})

	srv := &Server{
		Media:     media,
		MediaRoot: cfg.MediaRoot,
		Log:       log,
	}

	return srv.routes(), srv
}

// routes регистрирует обработчики раздачи, диагностики и здоровья.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/videos", func(vr chi.Router) {
		// Фиксированные пути регистрируются до wildcard, иначе chi отдаст
		// их в {filename}.
		vr.Get("/direct", s.getDirect)
		vr.Get("/test", s.getProbe)
		vr.Get("/{filename}", s.getVideo)
	})

	r.Get("/health", s.health)

	return r
}
