package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pulse-backend/internal/middleware"
	"pulse-backend/internal/models"
	"pulse-backend/internal/notify"
	"pulse-backend/internal/sentiment"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type FeedbackHandler struct {
	feedback FeedbackStore
	users    UserStore
	analyzer sentiment.Analyzer
	notifier notify.Notifier
}

func NewFeedbackHandler(feedback FeedbackStore, users UserStore, analyzer sentiment.Analyzer, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		users:    users,
		analyzer: analyzer,
		notifier: notifier,
	}
}

type SubmitFeedbackRequest struct {
	Content     string `json:"content"`
	Type        string `json:"type"`
	ManagerID   string `json:"managerId"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type RespondRequest struct {
	Response string `json:"response"`
}

// --- POST /feedback ---

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "feedback content is required"})
		return
	}
	if !models.ValidFeedbackType(req.Type) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be feedback or question"})
		return
	}

	// The author always comes from the verified token; a client-supplied
	// employee field is never honored.
	employeeID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}

	managerID, err := bson.ObjectIDFromHex(req.ManagerID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid manager ID"})
		return
	}

	manager, err := h.users.FindByID(r.Context(), managerID)
	if err != nil {
		log.Printf("Error finding manager: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if manager == nil || manager.Role != models.RoleManager {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "manager not found"})
		return
	}

	feedback := &models.Feedback{
		EmployeeID:  employeeID,
		ManagerID:   managerID,
		Content:     req.Content,
		Type:        req.Type,
		IsAnonymous: req.IsAnonymous,
	}

	// Best-effort enrichment: a slow or unavailable sentiment service must
	// never fail the write.
	if result, err := h.analyzer.Analyze(r.Context(), req.Content); err != nil {
		log.Printf("Sentiment analysis unavailable: %v", err)
	} else {
		feedback.Sentiment = &result.Sentiment
		feedback.SentimentScore = &result.Confidence
	}

	if err := h.feedback.Create(r.Context(), feedback); err != nil {
		log.Printf("Error creating feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to submit feedback"})
		return
	}

	// Notify the manager in a background goroutine (non-blocking).
	notification := notify.Notification{
		ManagerEmail: manager.Email,
		ManagerName:  manager.Name,
		Kind:         feedback.Type,
		Content:      feedback.Content,
	}
	if !req.IsAnonymous {
		notification.EmployeeName = claims.Email
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.notifier.NotifyNewFeedback(ctx, notification); err != nil {
			log.Printf("Error sending feedback notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "feedback submitted successfully",
		"feedbackId": feedback.ID,
	})
}

// --- GET /feedback ---

// ListFeedback scopes strictly by the verified token role: managers see
// everything addressed to them, employees see only their own answered
// submissions. The legacy role query parameter is accepted but ignored.
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}

	var records []models.Feedback
	if claims.Role == models.RoleManager {
		records, err = h.feedback.FindByManager(r.Context(), userID)
	} else {
		records, err = h.feedback.FindAnsweredByEmployee(r.Context(), userID)
	}
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// --- POST /feedback/{id}/respond ---

func (h *FeedbackHandler) Respond(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	managerID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}

	feedbackID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Response == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "response text is required"})
		return
	}

	// One conditional write; a wrong manager, an unknown id and an already
	// answered record all surface as not found.
	matched, err := h.feedback.AttachResponse(r.Context(), feedbackID, managerID, req.Response)
	if err != nil {
		log.Printf("Error responding to feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !matched {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "response added successfully"})
}
