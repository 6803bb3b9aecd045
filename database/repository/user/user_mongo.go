package userRepo

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

// MongoUserRepo implements Repository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() *MongoUserRepo {
	return &MongoUserRepo{coll: database.DB().Collection("users")}
}

// Insert creates a new user document.
func (repo *MongoUserRepo) Insert(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user document by ID.
func (repo *MongoUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return repo.getOne(ctx, bson.M{"id": userID})
}

// GetByEmail retrieves a user document by email.
func (repo *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return repo.getOne(ctx, bson.M{"email": email})
}

func (repo *MongoUserRepo) getOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u models.User
	if err := repo.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return &u, nil
}

// Update sets the given fields on a user document.
func (repo *MongoUserRepo) Update(ctx context.Context, userID string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns every user profile.
func (repo *MongoUserRepo) ListAll(ctx context.Context) ([]models.User, error) {
	return repo.list(ctx, bson.M{})
}

// ListByRole returns every user with the given role tag.
func (repo *MongoUserRepo) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return repo.list(ctx, bson.M{"role": role})
}

// ListAdvisees returns the students whose declared advisor is lecturerID.
func (repo *MongoUserRepo) ListAdvisees(ctx context.Context, lecturerID string) ([]models.User, error) {
	return repo.list(ctx, bson.M{"role": models.RoleStudent, "dosenPA": lecturerID})
}

func (repo *MongoUserRepo) list(ctx context.Context, filter bson.M) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return users, nil
}

// Watch opens a change stream on the users collection, delivering full
// snapshots for the projection layer.
func (repo *MongoUserRepo) Watch(ctx context.Context) (<-chan []models.User, error) {
	stream, err := repo.coll.Watch(ctx, mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan []models.User, 1)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer stream.Close(context.Background())

		send := func() bool {
			users, err := repo.ListAll(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("user watch: snapshot failed", zap.Error(err))
				}
				return false
			}
			select {
			case out <- users:
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
			logger.Error("user watch: change stream closed", zap.Error(err))
		}
	}()
	return out, nil
}
