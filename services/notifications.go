package services

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/authors-haven/backend/config"
	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Pusher delivers a payload to a user's realtime channel, keyed by username.
// Delivery is fire-and-forget: implementations drop payloads for users with
// no open connection.
type Pusher interface {
	Push(username string, payload any)
}

// PushMessage is the payload sent over the realtime channel.
type PushMessage struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Link    string    `json:"link"`
	Sender  string    `json:"sender"`
}

// FanoutResult reports how a publish fan-out went. Individual follower
// failures never abort the fan-out; they are counted here instead of being
// swallowed.
type FanoutResult struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

type NotificationService struct {
	userRepo         *database.UserRepo
	followRepo       *database.FollowRepo
	notificationRepo *database.NotificationRepo
	pusher           Pusher
	baseURL          string
	logger           zerolog.Logger
}

func NewNotificationService(db database.Database, pusher Pusher) *NotificationService {
	cfg := config.New()
	return &NotificationService{
		userRepo:         db.UserRepo(),
		followRepo:       db.FollowRepo(),
		notificationRepo: db.NotificationRepo(),
		pusher:           pusher,
		baseURL:          strings.TrimSuffix(config.GetString(cfg, "BASE_URL", "http://localhost:8080"), "/"),
		logger:           log.With().Str("serviceName", "notificationService").Logger(),
	}
}

// articleLink builds the deep link for an article notification.
func (s *NotificationService) articleLink(slug string) string {
	return fmt.Sprintf("%s/articles/%s", s.baseURL, slug)
}

func (s *NotificationService) profileLink(username string) string {
	return fmt.Sprintf("%s/profiles/%s", s.baseURL, username)
}

// notify persists a notification for the receiver and pushes it to their
// realtime channel. Receivers who opted out (IsNotified=false) get nothing,
// and a sender never notifies themselves.
func (s *NotificationService) notify(sender, receiver *models.User, message, link string) error {
	if receiver.ID == sender.ID || !receiver.IsNotified {
		return nil
	}

	notification := models.Notification{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Message:    message,
		Link:       link,
	}
	if err := s.notificationRepo.Add(&notification); err != nil {
		return errs.NewDatabaseError("create", "notification", err)
	}

	if s.pusher != nil {
		s.pusher.Push(receiver.Username, PushMessage{
			ID:      notification.ID,
			Message: message,
			Link:    link,
			Sender:  sender.Username,
		})
	}
	return nil
}

// loadPair fetches sender and receiver, translating missing rows to 404s.
func (s *NotificationService) loadPair(senderID, receiverID uuid.UUID) (*models.User, *models.User, error) {
	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		return nil, nil, errs.NewDatabaseError("find", "user", err)
	}
	if sender == nil {
		return nil, nil, errs.NewNotFound("sender")
	}
	receiver, err := s.userRepo.FindByID(receiverID)
	if err != nil {
		return nil, nil, errs.NewDatabaseError("find", "user", err)
	}
	if receiver == nil {
		return nil, nil, errs.NewNotFound("receiver")
	}
	return sender, receiver, nil
}

// NotifyFollow tells a user they gained a follower.
func (s *NotificationService) NotifyFollow(senderID, receiverID uuid.UUID) error {
	sender, receiver, err := s.loadPair(senderID, receiverID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("%s %s started following you", sender.FirstName, sender.LastName)
	return s.notify(sender, receiver, message, s.profileLink(sender.Username))
}

// NotifyComment tells an article's author about a new comment.
func (s *NotificationService) NotifyComment(senderID uuid.UUID, article *models.Article) error {
	sender, receiver, err := s.loadPair(senderID, article.UserID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("%s %s commented on your article %q", sender.FirstName, sender.LastName, article.Title)
	return s.notify(sender, receiver, message, s.articleLink(article.Slug))
}

// NotifyArticleLike tells an article's author about a new like.
func (s *NotificationService) NotifyArticleLike(senderID uuid.UUID, article *models.Article) error {
	sender, receiver, err := s.loadPair(senderID, article.UserID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("%s %s liked your article %q", sender.FirstName, sender.LastName, article.Title)
	return s.notify(sender, receiver, message, s.articleLink(article.Slug))
}

// NotifyCommentLike tells a comment's author about a new like.
func (s *NotificationService) NotifyCommentLike(senderID uuid.UUID, comment *models.Comment, article *models.Article) error {
	sender, receiver, err := s.loadPair(senderID, comment.UserID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("%s %s liked your comment on %q", sender.FirstName, sender.LastName, article.Title)
	return s.notify(sender, receiver, message, s.articleLink(article.Slug))
}

// NotifyPublish fans a publish event out to every current follower of the
// author. Each delivery runs independently; one follower's failure cannot
// abort the rest, and the result reports how many deliveries failed.
func (s *NotificationService) NotifyPublish(article *models.Article) (FanoutResult, error) {
	author, err := s.userRepo.FindByID(article.UserID)
	if err != nil {
		return FanoutResult{}, errs.NewDatabaseError("find", "user", err)
	}
	if author == nil {
		return FanoutResult{}, errs.NewNotFound("author")
	}

	followers, err := s.followRepo.Followers(author.ID)
	if err != nil {
		return FanoutResult{}, errs.NewDatabaseError("find", "followers", err)
	}

	message := fmt.Sprintf("%s %s published a new article %q", author.FirstName, author.LastName, article.Title)
	link := s.articleLink(article.Slug)

	var delivered, failed atomic.Int64
	var group errgroup.Group
	for _, follower := range followers {
		follower := follower
		group.Go(func() error {
			if err := s.notify(author, &follower, message, link); err != nil {
				failed.Add(1)
				s.logger.Error().Err(err).
					Str("follower", follower.Username).
					Str("slug", article.Slug).
					Msg("Failed to notify follower of publish")
				return nil // isolate per-follower failures
			}
			if follower.IsNotified {
				delivered.Add(1)
			}
			return nil
		})
	}
	group.Wait()

	return FanoutResult{
		Delivered: int(delivered.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

// List returns one page of a user's notifications, newest first.
func (s *NotificationService) List(receiverID uuid.UUID, page, limit int, basePath string) ([]models.Notification, PageMetadata, error) {
	window := PaginationQueryMetadata(page, limit)
	notifications, total, err := s.notificationRepo.FindForReceiver(receiverID, window.Limit, window.Offset)
	if err != nil {
		return nil, PageMetadata{}, errs.NewDatabaseError("find", "notifications", err)
	}
	metadata, err := NewPageMetadata(page, limit, total, basePath)
	if err != nil {
		return nil, PageMetadata{}, err
	}
	return notifications, metadata, nil
}

// MarkRead flips a notification's IsRead flag. Only the receiver may do so.
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "notification", err)
	}
	if notification == nil {
		return nil, errs.NewNotFound("notification")
	}
	if notification.ReceiverID != userID {
		return nil, errs.NewForbiddenError("notification belongs to another user")
	}
	if !notification.IsRead {
		notification.IsRead = true
		if err := s.notificationRepo.Update(notification); err != nil {
			return nil, errs.NewDatabaseError("update", "notification", err)
		}
	}
	return notification, nil
}
