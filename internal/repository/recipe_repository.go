package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recipe-service/internal/models"
)

var ErrNotFound = errors.New("recipe not found")

type RecipeRepo struct {
	db *Mongo
}

func NewRecipeRepo(db *Mongo) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// Insert stores the recipe and fills in the store-assigned id and
// timestamps.
func (r *RecipeRepo) Insert(ctx context.Context, rec *models.Recipe) error {
	col, err := r.db.Collection(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	res, err := col.InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return nil
}

// ListAll returns every recipe, most recently updated first. Filtering and
// search happen client-side over the full set.
func (r *RecipeRepo) ListAll(ctx context.Context) ([]models.Recipe, error) {
	col, err := r.db.Collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Recipe, 0)
	for cur.Next(ctx) {
		var rec models.Recipe
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}

func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	col, err := r.db.Collection(ctx)
	if err != nil {
		return nil, err
	}
	var rec models.Recipe
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}
