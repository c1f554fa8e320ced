package appointmentRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

// ensureIndexes creates indexes for the conflict-check query path plus a
// partial unique index over (business, staff, date, time_slot) for confirmed
// staffed appointments. The unique index is the storage-level backstop behind
// the in-process slot lock: two concurrent bookings of the identical slot
// cannot both insert. Cancelled appointments fall outside the partial filter,
// so a cancelled slot can be re-booked.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "business_id", Value: 1},
			{Key: "staff_id", Value: 1},
			{Key: "appointment_date", Value: 1},
			{Key: "status", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "business_id", Value: 1},
			{Key: "staff_id", Value: 1},
			{Key: "appointment_date", Value: 1},
			{Key: "time_slot", Value: 1},
		}, Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"staff_id": bson.M{"$exists": true},
				"status":   models.StatusConfirmed,
			})},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
