package admin

import (
	"context"
	"errors"

	"officespace/internal/domain"

	"gorm.io/gorm"
)

// Service implements the moderation workflow: pending offices are either
// approved (become publicly listable) or rejected.
type Service struct {
	offices  OfficeRepository
	notifier HostNotifier
}

func NewService(offices OfficeRepository, notifier HostNotifier) *Service {
	return &Service{offices: offices, notifier: notifier}
}

func (s *Service) ApproveOffice(ctx context.Context, officeID int64) (*domain.Office, error) {
	office, err := s.pending(ctx, officeID)
	if err != nil {
		return nil, err
	}

	office.ApprovalStatus = domain.ApprovalApproved
	if err := s.offices.Update(ctx, office); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyOfficeApproved(ctx, office)
	}
	return office, nil
}

func (s *Service) RejectOffice(ctx context.Context, officeID int64, reason string) (*domain.Office, error) {
	office, err := s.pending(ctx, officeID)
	if err != nil {
		return nil, err
	}

	office.ApprovalStatus = domain.ApprovalRejected
	if err := s.offices.Update(ctx, office); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyOfficeRejected(ctx, office, reason)
	}
	return office, nil
}

func (s *Service) pending(ctx context.Context, officeID int64) (*domain.Office, error) {
	office, err := s.offices.GetByID(ctx, officeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, err
	}
	if office.ApprovalStatus != domain.ApprovalPending {
		return nil, ErrNotPending
	}
	return office, nil
}
