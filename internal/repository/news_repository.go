package repository

import (
	"context"

	"gorm.io/gorm"

	"newsboard/internal/model"
)

// NewsRepository defines news persistence operations.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	FindByID(ctx context.Context, id uint) (*model.News, error)
	List(ctx context.Context) ([]model.News, error)
	ListWithAuthors(ctx context.Context) ([]model.News, error)
	Update(ctx context.Context, news *model.News) error
	Delete(ctx context.Context, news *model.News) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository builds a GORM-backed repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	var news model.News
	if err := r.db.WithContext(ctx).First(&news, id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) List(ctx context.Context) ([]model.News, error) {
	var list []model.News
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListWithAuthors loads posts together with their authors in one query,
// for the index page.
func (r *newsRepository) ListWithAuthors(ctx context.Context) ([]model.News, error) {
	var list []model.News
	if err := r.db.WithContext(ctx).Preload("Author").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *newsRepository) Update(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

func (r *newsRepository) Delete(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Delete(news).Error
}
