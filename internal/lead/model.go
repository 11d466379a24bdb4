package lead

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusConverted Status = "Converted"
	StatusRejected  Status = "Rejected"
)

// Lead is a prospective member captured from the public landing page.
// Leads are never deleted; rejection is just a status change.
type Lead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Email     string             `bson:"email" json:"email"`
	Age       int                `bson:"age" json:"age"`
	HeightCm  float64            `bson:"heightCm" json:"heightCm"`
	WeightKg  float64            `bson:"weightKg" json:"weightKg"`
	Status    Status             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsValidTransition reports whether s is a status an admin may set.
// The field is an unordered tag, not a state machine: Converted is
// reachable without passing through Contacted.
func IsValidTransition(s string) bool {
	switch Status(s) {
	case StatusContacted, StatusConverted, StatusRejected:
		return true
	}
	return false
}
