package services

import (
	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type FollowService struct {
	userRepo      *database.UserRepo
	followRepo    *database.FollowRepo
	notifications *NotificationService
	logger        zerolog.Logger
}

func NewFollowService(db database.Database, notifications *NotificationService) *FollowService {
	return &FollowService{
		userRepo:      db.UserRepo(),
		followRepo:    db.FollowRepo(),
		notifications: notifications,
		logger:        log.With().Str("serviceName", "followService").Logger(),
	}
}

// Follow makes userID follow the user behind username and notifies them.
// Following yourself is a 400; following someone you already follow is a
// conflict. Unfollow and refollow reuse the same row.
func (s *FollowService) Follow(userID uuid.UUID, username string) (*models.Profile, error) {
	target, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if target == nil {
		return nil, errs.NewNotFound("user")
	}
	if target.ID == userID {
		return nil, errs.NewBadRequestError("you cannot follow yourself")
	}

	changed, err := s.followRepo.SetFollowing(userID, target.ID, true)
	if err != nil {
		return nil, errs.NewDatabaseError("create", "follow", err)
	}
	if !changed {
		return nil, errs.NewAlreadyExists("follow")
	}

	if err := s.notifications.NotifyFollow(userID, target.ID); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to notify new follower")
	}

	profile := target.Profile()
	return &profile, nil
}

// Unfollow flips the follow row back off.
func (s *FollowService) Unfollow(userID uuid.UUID, username string) error {
	target, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return errs.NewDatabaseError("find", "user", err)
	}
	if target == nil {
		return errs.NewNotFound("user")
	}

	changed, err := s.followRepo.SetFollowing(userID, target.ID, false)
	if err != nil {
		return errs.NewDatabaseError("remove", "follow", err)
	}
	if !changed {
		return errs.NewNotFound("follow")
	}
	return nil
}

// Followers lists the profiles currently following the user.
func (s *FollowService) Followers(userID uuid.UUID) ([]models.Profile, error) {
	users, err := s.followRepo.Followers(userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "followers", err)
	}
	return profiles(users), nil
}

// Following lists the profiles the user currently follows.
func (s *FollowService) Following(userID uuid.UUID) ([]models.Profile, error) {
	users, err := s.followRepo.Following(userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "following", err)
	}
	return profiles(users), nil
}

func profiles(users []models.User) []models.Profile {
	result := make([]models.Profile, 0, len(users))
	for _, user := range users {
		result = append(result, user.Profile())
	}
	return result
}
