package handlers

import (
	"context"

	"pulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindManagers(ctx context.Context) ([]models.ManagerSummary, error)
}

// FeedbackStore is the slice of the feedback repository the handlers need.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByManager(ctx context.Context, managerID bson.ObjectID) ([]models.Feedback, error)
	FindAnsweredByEmployee(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error)
	AttachResponse(ctx context.Context, id, managerID bson.ObjectID, response string) (bool, error)
}
