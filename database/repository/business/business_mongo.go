package businessRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"slotwise/utils"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo constructs the repository and ensures its indexes.
func NewMongoBusinessRepo(db *mongo.Database) *MongoBusinessRepo {
	repo := &MongoBusinessRepo{coll: db.Collection("businesses")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure business indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
