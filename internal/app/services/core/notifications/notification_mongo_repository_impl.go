package notifications

import (
	"context"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Database) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
