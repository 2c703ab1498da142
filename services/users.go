package services

import (
	"strings"
	"time"

	"github.com/authors-haven/backend/auth"
	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProfileUpdate carries the optional profile fields a user may change.
type ProfileUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Image      *string `json:"image,omitempty"`
	IsNotified *bool   `json:"isNotified,omitempty"`
}

type UserService struct {
	userRepo *database.UserRepo
	logger   zerolog.Logger
}

func NewUserService(db database.Database) *UserService {
	return &UserService{
		userRepo: db.UserRepo(),
		logger:   log.With().Str("serviceName", "userService").Logger(),
	}
}

// Signup creates an account, hashes the password and sends the welcome
// email. Duplicate email or username is a conflict. The welcome email is
// fire-and-forget.
func (s *UserService) Signup(input SignupInput) (*models.User, string, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	if input.Email == "" {
		return nil, "", errs.NewInvalidFieldError("email", "must not be empty")
	}
	if input.Username == "" {
		return nil, "", errs.NewInvalidFieldError("username", "must not be empty")
	}
	if len(input.Password) < 8 {
		return nil, "", errs.NewInvalidFieldError("password", "must be at least 8 characters")
	}

	if existing, err := s.userRepo.FindByEmail(input.Email); err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	} else if existing != nil {
		return nil, "", errs.NewAlreadyExists("user")
	}
	if existing, err := s.userRepo.FindByUsername(input.Username); err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	} else if existing != nil {
		return nil, "", errs.NewAlreadyExists("username")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", errs.NewInternalErrorWithCause("failed to hash password", err)
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Email:     input.Email,
		Password:  hash,
		Role:      "user",
	}
	if err := s.userRepo.Add(&user); err != nil {
		return nil, "", errs.NewDatabaseError("create", "user", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", errs.NewInternalErrorWithCause("failed to issue token", err)
	}

	go func() {
		if err := SendWelcomeEmail(user.Email, user.FirstName); err != nil {
			s.logger.Error().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
		}
	}()

	return &user, token, nil
}

// Login verifies credentials and issues a token.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, password) {
		return nil, "", errs.NewUnauthorizedError("invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", errs.NewInternalErrorWithCause("failed to issue token", err)
	}
	return user, token, nil
}

// GetProfile returns the public profile behind a username.
func (s *UserService) GetProfile(username string) (*models.Profile, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}
	profile := user.Profile()
	return &profile, nil
}

// FindByUsername resolves a username to a user, for handlers that need the
// ID behind a profile path segment.
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of the update to the caller's
// own profile, including the IsNotified opt in/out gate.
func (s *UserService) UpdateProfile(userID uuid.UUID, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.Image != nil {
		user.Image = update.Image
	}
	if update.IsNotified != nil {
		user.IsNotified = *update.IsNotified
	}
	now := time.Now()
	user.UpdatedAt = &now

	if err := s.userRepo.Update(user); err != nil {
		return nil, errs.NewDatabaseError("update", "user", err)
	}
	return user, nil
}
