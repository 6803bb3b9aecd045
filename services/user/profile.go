package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"konsulta/models"
	"konsulta/services/notification"
	"konsulta/utils"

	"go.uber.org/zap"
)

// Lecturer-picker cache. The roster changes only when a lecturer registers
// or edits their profile, both of which invalidate the key.
const (
	lecturersCacheKey = "cache:lecturers"
	lecturersCacheTTL = 10 * time.Minute
)

// GetByID fetches a user profile.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of the update to the stored
// profile and returns the result.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, upd models.UserProfileUpdate) (*models.User, error) {
	fields := map[string]any{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setString("fullName", upd.FullName)
	setString("programStudi", upd.ProgramStudi)
	setString("tahunMasuk", upd.TahunMasuk)
	setString("dosenPA", upd.DosenPA)
	setString("nomorHP", upd.NomorHP)
	setString("emailAlternatif", upd.EmailAlternatif)
	setString("profilePicture", upd.ProfilePicture)
	setString("otherInterest", upd.OtherInterest)
	if upd.Interests != nil {
		fields["interests"] = *upd.Interests
	}
	if upd.FullName != nil && *upd.FullName == "" {
		return nil, ValidationError{Field: "fullName", Reason: "must not be empty"}
	}

	if len(fields) > 0 {
		if err := s.Repo.Update(ctx, userID, fields); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.IsLecturer() {
		s.invalidateLecturerCache(ctx)
	}
	return u, nil
}

// UpdateInterests replaces the user's interest list and notifies the user.
func (s *DefaultUserService) UpdateInterests(ctx context.Context, userID string, interests []string, otherInterest string) (*models.User, error) {
	fields := map[string]any{
		"interests":     interests,
		"otherInterest": otherInterest,
	}
	if err := s.Repo.Update(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update interests: %w", err)
	}
	s.Notifier.Notify(ctx, userID, notification.InterestsUpdatedMessage())
	return s.Repo.GetByID(ctx, userID)
}

// ListLecturers returns every lecturer profile, served from the cache when
// a fresh copy is there.
func (s *DefaultUserService) ListLecturers(ctx context.Context) ([]models.User, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, lecturersCacheKey); err == nil && data != nil {
			var lecturers []models.User
			if err := json.Unmarshal(data, &lecturers); err == nil {
				return lecturers, nil
			}
		}
	}

	lecturers, err := s.Repo.ListByRole(ctx, models.RoleLecturer)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(lecturers); err == nil {
			if err := s.Cache.Set(ctx, lecturersCacheKey, data, lecturersCacheTTL); err != nil {
				utils.GetLogger().Warn("failed to cache lecturer list", zap.Error(err))
			}
		}
	}
	return lecturers, nil
}

func (s *DefaultUserService) invalidateLecturerCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, lecturersCacheKey); err != nil {
		utils.GetLogger().Warn("failed to invalidate lecturer list cache", zap.Error(err))
	}
}
