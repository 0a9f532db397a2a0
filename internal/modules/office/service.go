package office

import (
	"context"
	"errors"
	"sort"

	"officespace/internal/domain"
	"officespace/internal/pkg/geo"
	"officespace/internal/repository"
	"officespace/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	offices  OfficeRepository
	images   ImageRepository
	tags     TagRepository
	notifier ModerationNotifier
	store    storage.Storage
}

func NewService(
	offices OfficeRepository,
	images ImageRepository,
	tags TagRepository,
	notifier ModerationNotifier,
	store storage.Storage,
) *Service {
	return &Service{
		offices:  offices,
		images:   images,
		tags:     tags,
		notifier: notifier,
		store:    store,
	}
}

/* ---------- LISTING ---------- */

// List returns the page of offices visible to callerID (0 for anonymous).
// Anyone sees approved, non-hidden offices; a caller filtering by their own
// user id additionally sees their pending, rejected and hidden listings.
func (s *Service) List(ctx context.Context, callerID int64, req ListRequest) ([]domain.Office, int64, error) {
	f := repository.OfficeFilters{
		OwnerID:   req.UserID,
		VisitorID: req.VisitorID,
	}

	// Visibility is self-scoped: being logged in does not relax the filter
	// for anyone else's listings.
	if req.UserID != 0 && callerID != 0 && req.UserID == callerID {
		f.IncludeUnlisted = true
	}

	offices, err := s.offices.GetAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	// The repository returns ascending-id order. With a query point the
	// listing is re-ranked by great-circle distance, ties broken by id.
	if req.Lat != nil && req.Lng != nil {
		qLat, qLng := *req.Lat, *req.Lng
		sort.SliceStable(offices, func(i, j int) bool {
			di := geo.Distance(qLat, qLng, offices[i].Lat, offices[i].Lng)
			dj := geo.Distance(qLat, qLng, offices[j].Lat, offices[j].Lng)
			if di == dj {
				return offices[i].ID < offices[j].ID
			}
			return di < dj
		})
	}

	total := int64(len(offices))

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * limit
	if start >= len(offices) {
		return []domain.Office{}, total, nil
	}
	end := start + limit
	if end > len(offices) {
		end = len(offices)
	}

	return offices[start:end], total, nil
}

// Get fetches a single office by id with the same annotations as List.
// Visibility is not re-checked here: a pending or hidden office is reachable
// by direct link, the gate applies to listings only.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Office, error) {
	o, err := s.offices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListTags returns the full tag vocabulary.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.GetAll(ctx)
}

/* ---------- MUTATIONS ---------- */

// Create persists a new office for userID. New offices always start pending
// and the moderators are notified.
func (s *Service) Create(ctx context.Context, userID int64, req CreateOfficeRequest) (*domain.Office, error) {
	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	o := &domain.Office{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		AddressLine1:    req.AddressLine1,
		Lat:             req.Lat,
		Lng:             req.Lng,
		PricePerDay:     req.PricePerDay,
		MonthlyDiscount: req.MonthlyDiscount,
		Hidden:          req.Hidden,
		ApprovalStatus:  domain.ApprovalPending,
	}

	if err := s.offices.CreateWithTags(ctx, o, tags); err != nil {
		return nil, mapPgError(err)
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyOfficePendingApproval(ctx, o)
	}

	return s.offices.GetByID(ctx, o.ID)
}

// Update applies the supplied fields to the caller's office. Changing lat,
// lng or price_per_day to a different value forces the office back to
// pending and notifies the moderators; submitting an unchanged value does
// not. Tag membership, when supplied, is replaced as a whole.
func (s *Service) Update(ctx context.Context, userID, officeID int64, req UpdateOfficeRequest) (*domain.Office, error) {
	o, err := s.Get(ctx, officeID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		return nil, ErrForbidden
	}

	if req.FeaturedImageID != nil {
		if err := s.checkFeaturedImage(ctx, o, *req.FeaturedImageID); err != nil {
			return nil, err
		}
		o.FeaturedImageID = req.FeaturedImageID
	}

	requiresReview := false
	if req.Lat != nil && *req.Lat != o.Lat {
		o.Lat = *req.Lat
		requiresReview = true
	}
	if req.Lng != nil && *req.Lng != o.Lng {
		o.Lng = *req.Lng
		requiresReview = true
	}
	if req.PricePerDay != nil && *req.PricePerDay != o.PricePerDay {
		o.PricePerDay = *req.PricePerDay
		requiresReview = true
	}

	if req.Title != nil {
		o.Title = *req.Title
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.AddressLine1 != nil {
		o.AddressLine1 = *req.AddressLine1
	}
	if req.MonthlyDiscount != nil {
		o.MonthlyDiscount = *req.MonthlyDiscount
	}
	if req.Hidden != nil {
		o.Hidden = *req.Hidden
	}

	if requiresReview {
		o.ApprovalStatus = domain.ApprovalPending
	}

	var tagsPtr *[]domain.Tag
	if req.Tags != nil {
		tags, err := s.resolveTags(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
		tagsPtr = &tags
	}

	if err := s.offices.UpdateWithTags(ctx, o, tagsPtr); err != nil {
		return nil, mapPgError(err)
	}

	if requiresReview && s.notifier != nil {
		_ = s.notifier.NotifyOfficePendingApproval(ctx, o)
	}

	return s.offices.GetByID(ctx, o.ID)
}

// Delete soft-deletes the caller's office and cascades removal of its images
// together with their stored bytes. An office with any active reservation
// cannot be deleted.
func (s *Service) Delete(ctx context.Context, userID, officeID int64) error {
	o, err := s.Get(ctx, officeID)
	if err != nil {
		return err
	}

	if o.UserID != userID {
		return ErrForbidden
	}

	active, err := s.offices.CountActiveReservations(ctx, officeID)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrActiveReservations
	}

	paths, err := s.offices.SoftDeleteCascade(ctx, officeID)
	if err != nil {
		return err
	}

	// Bytes are dropped after the transaction commits; a failed object
	// delete leaves an orphan in storage, never a dangling DB row.
	for _, p := range paths {
		_ = s.store.Delete(ctx, p)
	}

	return nil
}

/* ---------- HELPERS ---------- */

func (s *Service) resolveTags(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := s.tags.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	if len(tags) != len(seen) {
		return nil, ErrUnknownTag
	}
	return tags, nil
}

func (s *Service) checkFeaturedImage(ctx context.Context, o *domain.Office, imageID int64) error {
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeaturedImageNotOwned
		}
		return err
	}
	if img.OfficeID != o.ID {
		return ErrFeaturedImageNotOwned
	}
	return nil
}

// mapPgError translates Postgres unique-violations on the tag pivot into a
// domain error instead of leaking a driver error to the handler.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateTag
	}
	return err
}
