package streamhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/stream_lite/pkg/httperrors"
	"github.com/yourname/stream_lite/pkg/streamproto"
)

// getVideo обслуживает раздачу по логическому имени: резолв через каталог,
// затем стриминг с учётом заголовка Range.
func (s *Server) getVideo(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	sent, err := s.Media.StreamByName(r.Context(), w, filename, r.Header.Get(streamproto.HeaderRange))
	if err != nil && !sent {
		httperrors.Write(w, err)
	}
}
