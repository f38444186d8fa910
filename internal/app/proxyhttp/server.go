package proxyhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yourname/stream_lite/internal/config"
	"github.com/yourname/stream_lite/pkg/nodeclient"
)

type Server struct {
	Node nodeclient.Client
	Log  zerolog.Logger
}

// NewServer конструктор
func NewServer(cfg *config.Config, log zerolog.Logger) (http.Handler, *Server) {
	srv := &Server{
		Node: nodeclient.New(cfg.UpstreamURL),
		Log:  log,
	}

	return srv.routes(), srv
}

// routes регистрирует обработчики проксирования и здоровья.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/proxy/video/direct", s.forwardDirect)
	r.Get("/health", s.health)

	return r
}
