package streamhttp

import (
	"net/http"

	"github.com/yourname/stream_lite/pkg/httperrors"
	"github.com/yourname/stream_lite/pkg/streamproto"
)

// getDirect обслуживает прямую раздачу: path задаётся query-параметром
// относительно корня медиахранилища, резолвер каталога не участвует.
func (s *Server) getDirect(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	sent, err := s.Media.StreamDirect(r.Context(), w, path, r.Header.Get(streamproto.HeaderRange))
	if err != nil && !sent {
		httperrors.Write(w, err)
	}
}
