package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TypeFeedback = "feedback"
	TypeQuestion = "question"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Feedback is a single employee-authored submission directed at one manager.
// EmployeeID is always recorded, even for anonymous submissions — anonymity
// only suppresses the author's name in presentation, never in storage.
// Response and RespondedAt are either both absent or both set; once set they
// are never modified.
type Feedback struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID     bson.ObjectID `bson:"employee_id" json:"employeeId"`
	ManagerID      bson.ObjectID `bson:"manager_id" json:"managerId"`
	Content        string        `bson:"content" json:"content"`
	Type           string        `bson:"type" json:"type"`
	Sentiment      *string       `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	SentimentScore *float64      `bson:"sentiment_score,omitempty" json:"sentimentScore,omitempty"`
	IsAnonymous    bool          `bson:"is_anonymous" json:"isAnonymous"`
	Response       *string       `bson:"response,omitempty" json:"response,omitempty"`
	RespondedAt    *time.Time    `bson:"responded_at,omitempty" json:"respondedAt,omitempty"`
	CreatedAt      time.Time     `bson:"created_at" json:"createdAt"`
}

func (f *Feedback) Answered() bool {
	return f.Response != nil
}

func ValidFeedbackType(t string) bool {
	return t == TypeFeedback || t == TypeQuestion
}
