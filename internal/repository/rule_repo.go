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

// RuleRepo handles MongoDB operations for adaptation rules
type RuleRepo interface {
	Create(ctx context.Context, rule *model.AdaptationRule) (string, error)
	GetByID(ctx context.Context, id string) (*model.AdaptationRule, error)
	ListAll(ctx context.Context) ([]model.AdaptationRule, error)
	ListEnabled(ctx context.Context) ([]model.AdaptationRule, error)
	Update(ctx context.Context, rule *model.AdaptationRule) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, enabledOnly bool) (int64, error)
}

type ruleRepo struct {
	collection *mongo.Collection
}

// NewRuleRepo creates a new rule repository
func NewRuleRepo(db *mongo.Database) RuleRepo {
	return &ruleRepo{
		collection: db.Collection("adaptation_rules"),
	}
}

// storeSort is the canonical rule-store order: priority descending, then
// insertion order. The matcher's equal-priority tie-break relies on it.
var storeSort = bson.D{{Key: "priority", Value: -1}, {Key: "createdAt", Value: 1}}

func (r *ruleRepo) Create(ctx context.Context, rule *model.AdaptationRule) (string, error) {
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt

	result, err := r.collection.InsertOne(ctx, rule)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *ruleRepo) GetByID(ctx context.Context, id string) (*model.AdaptationRule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var rule model.AdaptationRule
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rule.ID = id
	return &rule, nil
}

func (r *ruleRepo) ListAll(ctx context.Context) ([]model.AdaptationRule, error) {
	return r.list(ctx, bson.M{})
}

func (r *ruleRepo) ListEnabled(ctx context.Context) ([]model.AdaptationRule, error) {
	return r.list(ctx, bson.M{"enabled": true})
}

func (r *ruleRepo) list(ctx context.Context, filter bson.M) ([]model.AdaptationRule, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(storeSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []model.AdaptationRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepo) Update(ctx context.Context, rule *model.AdaptationRule) error {
	oid, err := primitive.ObjectIDFromHex(rule.ID)
	if err != nil {
		return err
	}

	rule.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, rule)
	return err
}

func (r *ruleRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *ruleRepo) Count(ctx context.Context, enabledOnly bool) (int64, error) {
	filter := bson.M{}
	if enabledOnly {
		filter["enabled"] = true
	}
	return r.collection.CountDocuments(ctx, filter)
}
