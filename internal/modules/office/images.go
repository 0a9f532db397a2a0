package office

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"officespace/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxImageSize = 10 * 1024 * 1024 // 10 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadImage stores the uploaded file and attaches it to the office.
// Owner-only.
func (s *Service) UploadImage(ctx context.Context, userID, officeID int64, fileHeader *multipart.FileHeader) (*domain.OfficeImage, error) {
	o, err := s.Get(ctx, officeID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}

	if fileHeader.Size == 0 {
		return nil, ErrEmptyUpload
	}
	if fileHeader.Size > maxImageSize {
		return nil, ErrInvalidUpload
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	ext, ok := allowedImageTypes[mimeType]
	if !ok {
		return nil, ErrInvalidUpload
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	if e := filepath.Ext(fileHeader.Filename); e != "" {
		ext = strings.ToLower(e)
	}
	path := fmt.Sprintf("offices/%d/%s%s", officeID, uuid.New().String(), ext)

	if err := s.store.Put(ctx, path, file); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	img := &domain.OfficeImage{
		OfficeID: officeID,
		Path:     path,
	}
	if err := s.images.Create(ctx, img); err != nil {
		_ = s.store.Delete(ctx, path) // rollback object on DB error
		return nil, err
	}

	return img, nil
}

// DeleteImage removes one image from the office. Checks run in order, first
// failure wins:
//  1. the image must belong to this office,
//  2. it must not be the office's last image,
//  3. it must not be the featured image.
//
// On success the stored bytes are removed as well.
func (s *Service) DeleteImage(ctx context.Context, userID, officeID, imageID int64) error {
	o, err := s.Get(ctx, officeID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return ErrForbidden
	}

	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	if img.OfficeID != officeID {
		return ErrImageNotOwned
	}

	count, err := s.images.CountByOffice(ctx, officeID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrOnlyImage
	}

	if o.FeaturedImageID != nil && *o.FeaturedImageID == imageID {
		return ErrFeaturedImage
	}

	if err := s.images.Delete(ctx, imageID); err != nil {
		return err
	}

	_ = s.store.Delete(ctx, img.Path)
	return nil
}

// SetFeaturedImage designates one of the office's own images as its cover
// photo. A cross-office image id is a field-level validation failure.
func (s *Service) SetFeaturedImage(ctx context.Context, userID, officeID, imageID int64) (*domain.Office, error) {
	o, err := s.Get(ctx, officeID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.checkFeaturedImage(ctx, o, imageID); err != nil {
		return nil, err
	}

	o.FeaturedImageID = &imageID
	if err := s.offices.Update(ctx, o); err != nil {
		return nil, err
	}

	return s.offices.GetByID(ctx, o.ID)
}
