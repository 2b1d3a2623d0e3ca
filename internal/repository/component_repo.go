package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adaptiveui/internal/model"
)

// ComponentRepo handles MongoDB operations for the UI component library
type ComponentRepo interface {
	Create(ctx context.Context, component *model.Component) (string, error)
	GetByID(ctx context.Context, id string) (*model.Component, error)
	List(ctx context.Context) ([]model.Component, error)
}

type componentRepo struct {
	collection *mongo.Collection
}

// NewComponentRepo creates a new component repository
func NewComponentRepo(db *mongo.Database) ComponentRepo {
	return &componentRepo{
		collection: db.Collection("ui_components"),
	}
}

func (r *componentRepo) Create(ctx context.Context, component *model.Component) (string, error) {
	component.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, component)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *componentRepo) GetByID(ctx context.Context, id string) (*model.Component, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var component model.Component
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&component)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	component.ID = id
	return &component, nil
}

func (r *componentRepo) List(ctx context.Context) ([]model.Component, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var components []model.Component
	if err := cursor.All(ctx, &components); err != nil {
		return nil, err
	}
	return components, nil
}
