package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"konsulta/database"
	"konsulta/models"
	"konsulta/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoNotificationRepo implements Repository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() Repository {
	return &MongoNotificationRepo{coll: database.DB().Collection("notifications")}
}

// Insert creates a new notification document.
func (repo *MongoNotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// Delete removes a single notification by ID.
func (repo *MongoNotificationRepo) Delete(ctx context.Context, notificationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": notificationID})
	if err != nil {
		return fmt.Errorf("error deleting notification %s: %w", notificationID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByRecipient returns a recipient's notifications, newest first.
func (repo *MongoNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"recipientId": recipientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("error decoding notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return notifications, nil
}

// MarkAllRead flips the read flag on every unread notification of a recipient.
func (repo *MongoNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"recipientId": recipientID, "isRead": false}
	update := bson.M{"$set": bson.M{"isRead": true}}
	if _, err := repo.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("error marking notifications read for %s: %w", recipientID, err)
	}
	return nil
}

// DeleteAll removes every notification of a recipient.
func (repo *MongoNotificationRepo) DeleteAll(ctx context.Context, recipientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteMany(ctx, bson.M{"recipientId": recipientID}); err != nil {
		return fmt.Errorf("error clearing notifications for %s: %w", recipientID, err)
	}
	return nil
}

// WatchRecipient opens a change stream filtered to one recipient's
// notifications and delivers full snapshots, newest first.
func (repo *MongoNotificationRepo) WatchRecipient(ctx context.Context, recipientID string) (<-chan []models.Notification, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"fullDocument.recipientId": recipientID},
				bson.M{"fullDocument": nil}, // deletes carry no full document
			},
		}}},
	}
	stream, err := repo.coll.Watch(ctx, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan []models.Notification, 1)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer stream.Close(context.Background())

		send := func() bool {
			notifications, err := repo.ListByRecipient(ctx, recipientID)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("notification watch: snapshot failed", zap.Error(err))
				}
				return false
			}
			select {
			case out <- notifications:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send() {
			return
		}
		for stream.Next(ctx) {
			if !send() {
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Error("notification watch: change stream closed", zap.Error(err))
		}
	}()
	return out, nil
}
