package member

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MembershipType string

const (
	PlanMonthly    MembershipType = "Monthly"
	PlanHalfYearly MembershipType = "Half-Yearly"
	PlanYearly     MembershipType = "Yearly"
)

const (
	StatusActive  = "Active"
	StatusExpired = "Expired"
)

// Member is a paying gym member. Status is not stored: it is derived
// from ExpiryDate on read so there is a single source of truth.
type Member struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	Age            int                `bson:"age" json:"age"`
	HeightCm       float64            `bson:"heightCm" json:"heightCm"`
	WeightKg       float64            `bson:"weightKg" json:"weightKg"`
	MembershipType MembershipType     `bson:"membershipType" json:"membershipType"`
	JoiningDate    time.Time          `bson:"joiningDate" json:"joiningDate"`
	ExpiryDate     time.Time          `bson:"expiryDate" json:"expiryDate"`
	PhotoURL       string             `bson:"photoUrl" json:"photoUrl"`
	PhotoPublicID  string             `bson:"photoPublicId" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`

	Status string `bson:"-" json:"status"`
}

// StatusAt derives the membership status from the expiry date.
func (m *Member) StatusAt(now time.Time) string {
	if m.ExpiryDate.After(now) {
		return StatusActive
	}
	return StatusExpired
}

func IsValidPlan(s string) bool {
	switch MembershipType(s) {
	case PlanMonthly, PlanHalfYearly, PlanYearly:
		return true
	}
	return false
}
