package proxy

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// agentTimeout bounds the round trip to the AI-agent service; its text
// completions can be slow.
const agentTimeout = 60 * time.Second

const maxAgentBody = 1 << 20

// handleAgent forwards the request body to the external AI-agent service
// verbatim and relays the response. The prompt content is opaque here.
func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	if s.agentEndpoint == "" {
		writeError(w, http.StatusServiceUnavailable, "agent endpoint not configured")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxAgentBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), agentTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.agentEndpoint, bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "build upstream request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Error(r.Context(), "agent forward failed", "error", err)
		writeError(w, http.StatusBadGateway, "agent unavailable")
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", resp.Header.Get("Content-Type"))
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.log.Warn(r.Context(), "agent response relay interrupted", "error", err)
	}
}
