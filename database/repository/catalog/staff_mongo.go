package catalogRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/models"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

func NewMongoStaffRepo(db *mongo.Database) *MongoStaffRepo {
	return &MongoStaffRepo{coll: db.Collection("staff")}
}

func (r *MongoStaffRepo) Insert(s *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("error inserting staff member: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching staff member with id %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoStaffRepo) ListByBusiness(businessID string) ([]models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("error listing staff for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

func (r *MongoStaffRepo) Update(id, businessID string, data models.StaffCreate) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{
		"name":         data.Name,
		"phone":        data.Phone,
		"email":        data.Email,
		"services":     data.Services,
		"working_days": data.WorkingDays,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error updating staff member %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoStaffRepo) Delete(id, businessID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "business_id": businessID})
	if err != nil {
		return false, fmt.Errorf("error deleting staff member %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoStaffRepo) DeleteByBusiness(businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"business_id": businessID}); err != nil {
		return fmt.Errorf("error deleting staff for business %s: %w", businessID, err)
	}
	return nil
}

func (r *MongoStaffRepo) CountByBusiness(businessID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return 0, fmt.Errorf("error counting staff for business %s: %w", businessID, err)
	}
	return count, nil
}
