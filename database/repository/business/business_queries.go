package businessRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"slotwise/models"
)

// SlugTaken reports whether a business other than excludeID owns the slug.
func (r *MongoBusinessRepo) SlugTaken(slug, excludeID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error checking slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// ListEligible returns active businesses with an unexpired subscription.
func (r *MongoBusinessRepo) ListEligible(now time.Time) ([]models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"is_active":            true,
		"subscription_expires": bson.M{"$gte": now},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing eligible businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("error decoding businesses: %w", err)
	}
	return businesses, nil
}

// ListAll returns every business document.
func (r *MongoBusinessRepo) ListAll() ([]models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("error decoding businesses: %w", err)
	}
	return businesses, nil
}

// Count returns the total number of businesses.
func (r *MongoBusinessRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting businesses: %w", err)
	}
	return count, nil
}

// CountActive returns the number of non-suspended businesses.
func (r *MongoBusinessRepo) CountActive() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("error counting active businesses: %w", err)
	}
	return count, nil
}
