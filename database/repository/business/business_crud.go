package businessRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/models"
)

// Insert stores a new business document.
func (r *MongoBusinessRepo) Insert(b *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("error inserting business: %w", err)
	}
	return nil
}

// GetByID fetches a business by id, returning (nil, nil) when absent.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching business with id %s: %w", id, err)
	}
	return &b, nil
}

// GetBySlug fetches a business by slug, returning (nil, nil) when absent.
func (r *MongoBusinessRepo) GetBySlug(slug string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Business
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching business with slug %s: %w", slug, err)
	}
	return &b, nil
}

// UpdateProfile overwrites the caller-editable profile fields.
func (r *MongoBusinessRepo) UpdateProfile(id string, data models.BusinessCreate) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          data.Name,
		"slug":          data.Slug,
		"description":   data.Description,
		"logo_url":      data.LogoURL,
		"phone":         data.Phone,
		"address":       data.Address,
		"working_hours": data.WorkingHours,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, fmt.Errorf("error updating business %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

// SetActive flips the suspension flag.
func (r *MongoBusinessRepo) SetActive(id string, active bool) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_active": active}})
	if err != nil {
		return false, fmt.Errorf("error updating is_active for business %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

// SetSubscription updates the plan and expiry.
func (r *MongoBusinessRepo) SetSubscription(id, plan string, expires time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"subscription_plan":    plan,
		"subscription_expires": expires,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, fmt.Errorf("error updating subscription for business %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

// IncrementCounter applies an atomic $inc to an aggregate counter field.
func (r *MongoBusinessRepo) IncrementCounter(id, field string, delta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("error incrementing %s for business %s: %w", field, id, err)
	}
	return nil
}

// Delete removes the business document itself; owned collections are cleaned
// up by the admin service cascade.
func (r *MongoBusinessRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting business %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
