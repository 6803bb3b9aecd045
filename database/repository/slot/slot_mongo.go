package slotRepo

import (
	"context"
	"fmt"
	"time"

	"konsulta/database"
	"konsulta/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSlotRepo implements Repository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new instance of MongoSlotRepo.
func NewMongoSlotRepo() *MongoSlotRepo {
	return &MongoSlotRepo{coll: database.DB().Collection("schedule")}
}

// GetByID retrieves a slot document by ID.
func (repo *MongoSlotRepo) GetByID(ctx context.Context, slotID string) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.ScheduleSlot
	filter := bson.M{"id": slotID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching slot with id %s: %w", slotID, err)
	}
	return &slot, nil
}

// Insert creates a new slot document.
func (repo *MongoSlotRepo) Insert(ctx context.Context, slot *models.ScheduleSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("error creating slot: %w", err)
	}
	return nil
}

// ListAll returns every slot, ascending by date.
func (repo *MongoSlotRepo) ListAll(ctx context.Context) ([]models.ScheduleSlot, error) {
	return repo.list(ctx, bson.M{})
}

// ListByLecturer returns a lecturer's slots, ascending by date.
func (repo *MongoSlotRepo) ListByLecturer(ctx context.Context, lecturerID string) ([]models.ScheduleSlot, error) {
	return repo.list(ctx, bson.M{"lecturerId": lecturerID})
}

func (repo *MongoSlotRepo) list(ctx context.Context, filter bson.M) ([]models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.ScheduleSlot
	for cursor.Next(ctx) {
		var s models.ScheduleSlot
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return slots, nil
}
