package lead

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

func (r *Repository) Insert(ctx context.Context, l *Lead) error {
	l.ID = primitive.NewObjectID()
	l.Status = StatusNew
	l.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, l)
	return err
}

// FindNew returns untouched leads, newest first.
func (r *Repository) FindNew(ctx context.Context) ([]*Lead, error) {
	filter := bson.M{"status": StatusNew}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := []*Lead{}
	for cursor.Next(ctx) {
		var l Lead
		if err := cursor.Decode(&l); err != nil {
			return nil, err
		}
		leads = append(leads, &l)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
