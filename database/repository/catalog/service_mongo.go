package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/models"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) *MongoServiceRepo {
	return &MongoServiceRepo{coll: db.Collection("services")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) Insert(s *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("error inserting service: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoServiceRepo) ListByBusiness(businessID string) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("error listing services for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Update(id, businessID string, data models.ServiceCreate) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{
		"name":        data.Name,
		"description": data.Description,
		"duration":    data.Duration,
		"price":       data.Price,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error updating service %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoServiceRepo) Delete(id, businessID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "business_id": businessID})
	if err != nil {
		return false, fmt.Errorf("error deleting service %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoServiceRepo) DeleteByBusiness(businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"business_id": businessID}); err != nil {
		return fmt.Errorf("error deleting services for business %s: %w", businessID, err)
	}
	return nil
}

func (r *MongoServiceRepo) CountByBusiness(businessID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return 0, fmt.Errorf("error counting services for business %s: %w", businessID, err)
	}
	return count, nil
}
