package questionRepo

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

// MongoQuestionRepo implements Repository using MongoDB.
type MongoQuestionRepo struct {
	coll *mongo.Collection
}

// NewMongoQuestionRepo constructs a new instance of MongoQuestionRepo.
func NewMongoQuestionRepo() Repository {
	return &MongoQuestionRepo{coll: database.DB().Collection("questions")}
}

// Insert creates a new question document.
func (repo *MongoQuestionRepo) Insert(ctx context.Context, q *models.Question) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("error creating question: %w", err)
	}
	return nil
}

// GetByID retrieves a question document by ID.
func (repo *MongoQuestionRepo) GetByID(ctx context.Context, questionID string) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var q models.Question
	if err := repo.coll.FindOne(ctx, bson.M{"id": questionID}).Decode(&q); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching question with id %s: %w", questionID, err)
	}
	return &q, nil
}

// SetAnswer records the lecturer's answer and flips status to answered.
// Re-answering overwrites the previous text; status never reverts to new.
func (repo *MongoQuestionRepo) SetAnswer(ctx context.Context, questionID, answerText string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"answerText": answerText,
			"status":     models.QuestionStatusAnswered,
		},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": questionID}, update)
	if err != nil {
		return fmt.Errorf("error answering question %s: %w", questionID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByStudent returns a student's questions, newest first.
func (repo *MongoQuestionRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Question, error) {
	return repo.list(ctx, bson.M{"studentId": studentID})
}

// ListByLecturer returns the questions addressed to a lecturer, newest first.
func (repo *MongoQuestionRepo) ListByLecturer(ctx context.Context, lecturerID string) ([]models.Question, error) {
	return repo.list(ctx, bson.M{"lecturerId": lecturerID})
}

func (repo *MongoQuestionRepo) list(ctx context.Context, filter bson.M) ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submissionTime", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	for cursor.Next(ctx) {
		var q models.Question
		if err := cursor.Decode(&q); err != nil {
			return nil, fmt.Errorf("error decoding question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return questions, nil
}

// Watch opens a change stream on the questions collection, delivering full
// snapshots ordered by submission time (newest first).
func (repo *MongoQuestionRepo) Watch(ctx context.Context) (<-chan []models.Question, error) {
	stream, err := repo.coll.Watch(ctx, mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan []models.Question, 1)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer stream.Close(context.Background())

		send := func() bool {
			questions, err := repo.list(ctx, bson.M{})
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("question watch: snapshot failed", zap.Error(err))
				}
				return false
			}
			select {
			case out <- questions:
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
			logger.Error("question watch: change stream closed", zap.Error(err))
		}
	}()
	return out, nil
}
