package streamhttp

import (
	"encoding/json"
	"net/http"

	"github.com/yourname/stream_lite/pkg/httperrors"
)

// getProbe отвечает диагностическим отчётом по файлу: stat, читаемость,
// hex первых байт. Только чтение.
func (s *Server) getProbe(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	report, err := s.Media.Probe(r.Context(), path)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.Log.Error().Err(err).Msg("encode probe report")
	}
}
