package gallery

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is a gallery image hosted on the external media service.
// PublicID is kept solely to delete the hosted asset later.
type Photo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PhotoURL  string             `bson:"photoUrl" json:"photoUrl"`
	PublicID  string             `bson:"publicId" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
