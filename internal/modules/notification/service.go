package notification

import (
	"context"
	"fmt"

	"officespace/internal/domain"
)

// ModeratorLister resolves the recipients of moderation notifications.
type ModeratorLister interface {
	GetModerators(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	repo  *Repository
	users ModeratorLister
	hub   *Hub
}

func NewService(repo *Repository, users ModeratorLister, hub *Hub) *Service {
	return &Service{repo: repo, users: users, hub: hub}
}

func (s *Service) create(ctx context.Context, userID int64, t domain.NotificationType, title, message string, data map[string]any) error {
	n := &domain.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	if err := s.repo.Create(ctx, n, data); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Push(userID, &WSEvent{Type: string(t), Payload: n})
	}
	return nil
}

// NotifyOfficePendingApproval tells every moderator that an office is
// waiting for review. Fired on create and on any edit that forces
// re-review.
func (s *Service) NotifyOfficePendingApproval(ctx context.Context, office *domain.Office) error {
	moderators, err := s.users.GetModerators(ctx)
	if err != nil {
		return err
	}

	for _, m := range moderators {
		if err := s.create(
			ctx,
			m.ID,
			domain.NotifOfficePendingApproval,
			"Office pending approval",
			fmt.Sprintf("Office %q is waiting for review", office.Title),
			map[string]any{"office_id": office.ID},
		); err != nil {
			return err
		}
	}
	return nil
}

// NotifyOfficeApproved tells the host their office went live.
func (s *Service) NotifyOfficeApproved(ctx context.Context, office *domain.Office) error {
	return s.create(
		ctx,
		office.UserID,
		domain.NotifOfficeApproved,
		"Office approved",
		fmt.Sprintf("Your office %q has been approved", office.Title),
		map[string]any{"office_id": office.ID},
	)
}

// NotifyOfficeRejected tells the host their office was turned down.
func (s *Service) NotifyOfficeRejected(ctx context.Context, office *domain.Office, reason string) error {
	msg := fmt.Sprintf("Your office %q has been rejected", office.Title)
	if reason != "" {
		msg += ". Reason: " + reason
	}
	return s.create(
		ctx,
		office.UserID,
		domain.NotifOfficeRejected,
		"Office rejected",
		msg,
		map[string]any{"office_id": office.ID},
	)
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}
