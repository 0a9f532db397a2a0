package repository

import (
	"context"

	"officespace/internal/domain"

	"gorm.io/gorm"
)

type OfficeImageRepository struct {
	db *gorm.DB
}

func NewOfficeImageRepository(db *gorm.DB) *OfficeImageRepository {
	return &OfficeImageRepository{db: db}
}

func (r *OfficeImageRepository) Create(ctx context.Context, img *domain.OfficeImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *OfficeImageRepository) GetByID(ctx context.Context, id int64) (*domain.OfficeImage, error) {
	var img domain.OfficeImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *OfficeImageRepository) CountByOffice(ctx context.Context, officeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.OfficeImage{}).
		Where("office_id = ?", officeID).
		Count(&count).Error
	return count, err
}

func (r *OfficeImageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.OfficeImage{}, id).Error
}
