package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

type User struct {
	ID         bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Email      string         `bson:"email" json:"email"`
	Name       string         `bson:"name" json:"name"`
	Password   string         `bson:"password" json:"-"`
	Role       string         `bson:"role" json:"role"`
	ManagerID  *bson.ObjectID `bson:"manager_id,omitempty" json:"managerId,omitempty"`
	Department string         `bson:"department" json:"department"`
	CreatedAt  time.Time      `bson:"created_at" json:"createdAt"`
}

func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager
}

// ManagerSummary is the projection of a manager returned by the public
// manager listing. It intentionally carries no credential fields.
type ManagerSummary struct {
	ID         bson.ObjectID `bson:"_id" json:"id"`
	Name       string        `bson:"name" json:"name"`
	Email      string        `bson:"email" json:"email"`
	Department string        `bson:"department" json:"department"`
}
