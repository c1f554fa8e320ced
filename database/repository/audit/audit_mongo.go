package auditRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

// AuditRepository defines data access for audit log entries.
type AuditRepository interface {
	Insert(entry *models.AuditLog) error
	// List returns the newest entries, optionally filtered by log type.
	List(limit int64, logType string) ([]models.AuditLog, error)
}

// MongoAuditRepo implements AuditRepository using MongoDB.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

func NewMongoAuditRepo(db *mongo.Database) *MongoAuditRepo {
	return &MongoAuditRepo{coll: db.Collection("logs")}
}

func (r *MongoAuditRepo) Insert(entry *models.AuditLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error inserting audit log: %w", err)
	}
	return nil
}

func (r *MongoAuditRepo) List(limit int64, logType string) ([]models.AuditLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if logType != "" {
		filter["type"] = logType
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing audit logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("error decoding audit logs: %w", err)
	}
	return logs, nil
}
