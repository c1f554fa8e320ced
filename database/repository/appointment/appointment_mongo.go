package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs the repository and ensures its indexes.
func NewMongoAppointmentRepo(db *mongo.Database) *MongoAppointmentRepo {
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure appointment indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) Insert(a *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slot already reserved: %w", err)
		}
		return fmt.Errorf("error inserting appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", id, err)
	}
	return &a, nil
}

// ListActiveForStaffDay fetches the non-cancelled appointments that a
// candidate slot must be checked against. Cancelled appointments are excluded
// so their slots are free for re-booking.
func (r *MongoAppointmentRepo) ListActiveForStaffDay(businessID, staffID, date string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"business_id":      businessID,
		"staff_id":         staffID,
		"appointment_date": date,
		"status":           bson.M{"$ne": models.StatusCancelled},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments for staff %s on %s: %w", staffID, date, err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepo) ListByBusiness(businessID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepo) SetStatus(id string, status models.AppointmentStatus) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, fmt.Errorf("error updating status for appointment %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoAppointmentRepo) DeleteByBusiness(businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"business_id": businessID}); err != nil {
		return fmt.Errorf("error deleting appointments for business %s: %w", businessID, err)
	}
	return nil
}

func (r *MongoAppointmentRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments: %w", err)
	}
	return count, nil
}

func (r *MongoAppointmentRepo) CountByDate(date string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"appointment_date": date})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments for %s: %w", date, err)
	}
	return count, nil
}

func (r *MongoAppointmentRepo) CountByBusiness(businessID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments for business %s: %w", businessID, err)
	}
	return count, nil
}

// SumCompletedRevenue aggregates the price of completed appointments within a
// calendar month, identified by the "YYYY-MM" prefix of appointment_date.
func (r *MongoAppointmentRepo) SumCompletedRevenue(monthPrefix string) (float64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"appointment_date": bson.M{"$regex": "^" + monthPrefix},
		"status":           models.StatusCompleted,
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"price": 1}))
	if err != nil {
		return 0, fmt.Errorf("error finding completed appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var total float64
	for cursor.Next(ctx) {
		var doc struct {
			Price float64 `bson:"price"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return 0, fmt.Errorf("error decoding appointment price: %w", err)
		}
		total += doc.Price
	}
	if err := cursor.Err(); err != nil {
		return 0, fmt.Errorf("cursor error: %w", err)
	}
	return total, nil
}
