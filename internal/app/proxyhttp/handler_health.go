package proxyhttp

import (
	"encoding/json"
	"net/http"
)

// proxyHealth — payload ответа /health прокси-узла.
type proxyHealth struct {
	OK       bool   `json:"ok"`
	Upstream bool   `json:"upstream"`
	Error    string `json:"error,omitempty"`
}

// health опрашивает апстрим и отдаёт сводку: прокси жив, апстрим — как повезёт.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	payload := proxyHealth{OK: true}

	info, err := s.Node.Health(r.Context())
	switch {
	case err != nil:
		payload.Error = err.Error()
	case info.OK:
		payload.Upstream = true
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
