package gallery

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("photo not found")

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

func (r *Repository) Insert(ctx context.Context, p *Photo) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, p)
	return err
}

// FindRecent returns photos newest first. limit <= 0 returns all; the
// landing page passes a small limit for its preview strip.
func (r *Repository) FindRecent(ctx context.Context, limit int) ([]*Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := []*Photo{}
	for cursor.Next(ctx) {
		var p Photo
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		photos = append(photos, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p Photo
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
