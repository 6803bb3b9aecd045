package slotRepo

import (
	"context"

	"konsulta/models"
	"konsulta/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Watch opens a change stream on the schedule collection and delivers the
// full current snapshot immediately, then a fresh snapshot after every
// change. Delivery stops and the channel closes when ctx is cancelled.
func (repo *MongoSlotRepo) Watch(ctx context.Context) (<-chan []models.ScheduleSlot, error) {
	stream, err := repo.coll.Watch(ctx, mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan []models.ScheduleSlot, 1)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer stream.Close(context.Background())

		send := func() bool {
			slots, err := repo.ListAll(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("slot watch: snapshot failed", zap.Error(err))
				}
				return false
			}
			select {
			case out <- slots:
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
			logger.Error("slot watch: change stream closed", zap.Error(err))
		}
	}()
	return out, nil
}
