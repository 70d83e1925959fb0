package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pulse-backend/internal/auth"
	"pulse-backend/internal/middleware"
	"pulse-backend/internal/models"
	"pulse-backend/internal/notify"
	"pulse-backend/internal/repository"
	"pulse-backend/internal/sentiment"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeUserStore struct {
	users        []*models.User
	failManagers bool
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindManagers(ctx context.Context) ([]models.ManagerSummary, error) {
	if s.failManagers {
		return nil, errors.New("connection reset by peer")
	}
	managers := make([]models.ManagerSummary, 0)
	for _, u := range s.users {
		if u.Role == models.RoleManager {
			managers = append(managers, models.ManagerSummary{
				ID:         u.ID,
				Name:       u.Name,
				Email:      u.Email,
				Department: u.Department,
			})
		}
	}
	return managers, nil
}

func (s *fakeUserStore) addUser(role, name, email string) *models.User {
	user := &models.User{
		ID:         bson.NewObjectID(),
		Email:      email,
		Name:       name,
		Password:   "$2a$12$notsecret",
		Role:       role,
		Department: "Engineering",
		CreatedAt:  time.Now(),
	}
	s.users = append(s.users, user)
	return user
}

type fakeFeedbackStore struct {
	mu      sync.Mutex
	records []*models.Feedback
}

func (s *fakeFeedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	feedback.ID = bson.NewObjectID()
	feedback.CreatedAt = time.Now()
	s.records = append(s.records, feedback)
	return nil
}

func (s *fakeFeedbackStore) FindByManager(ctx context.Context, managerID bson.ObjectID) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Feedback, 0)
	for _, rec := range s.records {
		if rec.ManagerID == managerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *fakeFeedbackStore) FindAnsweredByEmployee(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Feedback, 0)
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID && rec.Answered() {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *fakeFeedbackStore) AttachResponse(ctx context.Context, id, managerID bson.ObjectID, response string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ID == id && rec.ManagerID == managerID && !rec.Answered() {
			now := time.Now()
			rec.Response = &response
			rec.RespondedAt = &now
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFeedbackStore) seed(employee, manager bson.ObjectID, content string, answered bool) *models.Feedback {
	rec := &models.Feedback{
		ID:         bson.NewObjectID(),
		EmployeeID: employee,
		ManagerID:  manager,
		Content:    content,
		Type:       models.TypeFeedback,
		CreatedAt:  time.Now(),
	}
	if answered {
		response := "Thanks"
		now := time.Now()
		rec.Response = &response
		rec.RespondedAt = &now
	}
	s.records = append(s.records, rec)
	return rec
}

type fakeAnalyzer struct {
	result *sentiment.Result
	err    error
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, text string) (*sentiment.Result, error) {
	return a.result, a.err
}

type captureNotifier struct {
	ch chan notify.Notification
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{ch: make(chan notify.Notification, 8)}
}

func (n *captureNotifier) NotifyNewFeedback(ctx context.Context, msg notify.Notification) error {
	n.ch <- msg
	return nil
}

func (n *captureNotifier) wait(t *testing.T) notify.Notification {
	t.Helper()
	select {
	case msg := <-n.ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return notify.Notification{}
	}
}

// --- request helpers ---

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, user *models.User) *http.Request {
	claims := &auth.Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	}
	return req.WithContext(middleware.WithClaims(req.Context(), claims))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
