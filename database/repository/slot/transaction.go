package slotRepo

import (
	"context"
	"fmt"
	"time"

	"konsulta/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceIfVersion commits a new booking list for the slot only if the stored
// version still equals expectedVersion. The filter carries both id and
// version, so a concurrent commit makes the update match nothing and the
// caller gets ErrVersionConflict instead of a lost update.
func (repo *MongoSlotRepo) ReplaceIfVersion(ctx context.Context, slot *models.ScheduleSlot, expectedVersion int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":      slot.ID,
		"version": expectedVersion,
	}
	update := bson.M{
		"$set": bson.M{"bookedStudents": slot.BookedStudents},
		"$inc": bson.M{"version": 1},
	}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error committing slot %s: %w", slot.ID, err)
	}
	if res.MatchedCount == 0 {
		// Either the version moved or the slot vanished; the retry loop
		// re-reads and tells the two apart.
		return ErrVersionConflict
	}
	slot.Version = expectedVersion + 1
	return nil
}
