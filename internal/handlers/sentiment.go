package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"pulse-backend/internal/models"
	"pulse-backend/internal/sentiment"
)

type SentimentHandler struct {
	analyzer sentiment.Analyzer
}

func NewSentimentHandler(analyzer sentiment.Analyzer) *SentimentHandler {
	return &SentimentHandler{
		analyzer: analyzer,
	}
}

type AnalyzeRequest struct {
	Text string `json:"text"`
}

// --- POST /sentiment ---

// Analyze proxies the external sentiment service. When the service is down
// the response still carries a result-shaped body (neutral, zero confidence)
// so clients can render it without a special case.
func (h *SentimentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		log.Printf("Error analyzing sentiment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":      "sentiment analysis unavailable",
			"sentiment":  models.SentimentNeutral,
			"confidence": 0,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
