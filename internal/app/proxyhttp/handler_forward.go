package proxyhttp

import (
	"io"
	"net/http"

	"github.com/yourname/stream_lite/pkg/httperrors"
	"github.com/yourname/stream_lite/pkg/streamproto"
)

// forwardDirect — чистый релей: query и Range уходят апстриму как есть,
// статус и заголовки ответа возвращаются клиенту без пересчёта.
// Content-Length и Content-Range — зона ответственности апстрима.
func (s *Server) forwardDirect(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Node.Fetch(r.Context(), r.URL.RawQuery, r.Header.Get(streamproto.HeaderRange))
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err = io.Copy(w, resp.Body); err != nil {
		// Заголовки уже отправлены: статус не изменить, остаётся лог.
		if r.Context().Err() == nil {
			s.Log.Error().Err(err).Str("query", r.URL.RawQuery).Msg("relay interrupted")
		}
	}
}
