package member

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("member not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

func (r *Repository) Insert(ctx context.Context, m *Member) error {
	now := time.Now()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var m Member
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m.Status = m.StatusAt(time.Now())
	return &m, nil
}

// FindActive returns members whose membership has not lapsed, sorted by
// name ascending.
func (r *Repository) FindActive(ctx context.Context, now time.Time) ([]*Member, error) {
	filter := bson.M{"expiryDate": bson.M{"$gt": now}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeAll(ctx, cursor, now)
}

// FindExpiringBetween returns members whose expiry falls in [start, end).
func (r *Repository) FindExpiringBetween(ctx context.Context, start, end time.Time) ([]*Member, error) {
	filter := bson.M{"expiryDate": bson.M{
		"$gte": start,
		"$lt":  end,
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeAll(ctx, cursor, time.Now())
}

func (r *Repository) decodeAll(ctx context.Context, cursor *mongo.Cursor, now time.Time) ([]*Member, error) {
	members := []*Member{}
	for cursor.Next(ctx) {
		var m Member
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		m.Status = m.StatusAt(now)
		members = append(members, &m)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return members, nil
}
