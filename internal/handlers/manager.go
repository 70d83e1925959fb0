package handlers

import (
	"log"
	"net/http"

	"pulse-backend/internal/models"
)

type ManagerHandler struct {
	users UserStore
}

func NewManagerHandler(users UserStore) *ManagerHandler {
	return &ManagerHandler{
		users: users,
	}
}

// --- GET /managers ---

// ListManagers always answers 200 with a list; on a store failure the list
// is empty so the registration form never has an error case to handle.
func (h *ManagerHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.users.FindManagers(r.Context())
	if err != nil {
		log.Printf("Error fetching managers: %v", err)
		writeJSON(w, http.StatusOK, []models.ManagerSummary{})
		return
	}

	writeJSON(w, http.StatusOK, managers)
}
