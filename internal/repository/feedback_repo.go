package repository

import (
	"context"
	"time"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedback"),
	}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindByManager returns every feedback record addressed to the manager,
// answered or not.
func (r *FeedbackRepo) FindByManager(ctx context.Context, managerID bson.ObjectID) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{"manager_id": managerID})
}

// FindAnsweredByEmployee returns the employee's own submissions that already
// carry a response. Unanswered submissions are never shown back to their
// author.
func (r *FeedbackRepo) FindAnsweredByEmployee(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{
		"employee_id": employeeID,
		"response":    bson.M{"$exists": true},
	})
}

func (r *FeedbackRepo) find(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	feedback := make([]models.Feedback, 0)
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// AttachResponse sets the response on a record in one conditional write.
// The filter requires the record to be addressed to the given manager AND to
// have no response yet, so a wrong manager, an unknown id and an
// already-answered record are all reported the same way (no match), and of
// two racing responders exactly one matches.
func (r *FeedbackRepo) AttachResponse(ctx context.Context, id, managerID bson.ObjectID, response string) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{
			"_id":        id,
			"manager_id": managerID,
			"response":   bson.M{"$exists": false},
		},
		bson.M{"$set": bson.M{
			"response":     response,
			"responded_at": time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

// EnsureIndexes creates necessary indexes for the feedback collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "manager_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "employee_id", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
