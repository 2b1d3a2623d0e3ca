package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adaptiveui/internal/model"
)

// InteractionRepo is the append-only interaction log
type InteractionRepo interface {
	Insert(ctx context.Context, interaction *model.Interaction) error
	Recent(ctx context.Context, userID int64, limit int64) ([]model.Interaction, error)
	CountDistinctUsers(ctx context.Context) (int64, error)
}

type interactionRepo struct {
	collection *mongo.Collection
}

// NewInteractionRepo creates a new interaction log repository
func NewInteractionRepo(db *mongo.Database) InteractionRepo {
	return &interactionRepo{
		collection: db.Collection("user_interactions"),
	}
}

func (r *interactionRepo) Insert(ctx context.Context, interaction *model.Interaction) error {
	_, err := r.collection.InsertOne(ctx, interaction)
	return err
}

// Recent returns the user's latest interactions, newest first.
func (r *interactionRepo) Recent(ctx context.Context, userID int64, limit int64) ([]model.Interaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []model.Interaction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *interactionRepo) CountDistinctUsers(ctx context.Context) (int64, error) {
	ids, err := r.collection.Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
