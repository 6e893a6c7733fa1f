package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/ingest"
	"github.com/SolarisSy/iast/internal/models"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	s.logger.Debug("chat request", zap.String("message", req.Message), zap.Int("history", len(req.History)))
	resp, err := s.engine.Respond(r.Context(), req.Message, req.History)
	if err != nil {
		s.logger.Error("chat turn failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("ingestion requested")
	result, err := s.pipeline.Run(r.Context())
	if err != nil {
		if ingest.IsConcurrentRun(err) {
			s.respondError(w, http.StatusConflict, "ingestion already in progress")
			return
		}
		s.logger.Error("ingestion failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"documents": result.Documents,
		"chunks":    result.Chunks,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ix, err := s.cache.Get(r.Context())
	if err != nil {
		s.logger.Error("status: index load failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{"trained": ix != nil}
	if ix != nil {
		resp["chunks"] = ix.Size()
		resp["sources"] = ix.SourceCount()
		resp["dimensions"] = ix.Dimensions()
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
