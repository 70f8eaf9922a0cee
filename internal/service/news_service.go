package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "newsboard/internal/errors"
	"newsboard/internal/model"
	"newsboard/internal/repository"
)

// NewsUpdate carries a partial news update. Nil fields keep the stored value.
type NewsUpdate struct {
	Title   *string
	Content *string
}

// NewsService exposes news CRUD operations. The *AsUser variants enforce
// ownership and back the session-gated web routes.
type NewsService interface {
	CreateNews(ctx context.Context, title, content string, userID uint) (*model.News, error)
	GetNews(ctx context.Context, id uint) (*model.News, error)
	ListNews(ctx context.Context) ([]model.News, error)
	ListNewsWithAuthors(ctx context.Context) ([]model.News, error)
	UpdateNews(ctx context.Context, id uint, update NewsUpdate) (*model.News, error)
	DeleteNews(ctx context.Context, id uint) error
	UpdateNewsAsUser(ctx context.Context, id, userID uint, update NewsUpdate) (*model.News, error)
	DeleteNewsAsUser(ctx context.Context, id, userID uint) error
}

type newsService struct {
	newsRepo repository.NewsRepository
	userRepo repository.UserRepository
}

// NewNewsService builds a NewsService over the repositories.
func NewNewsService(newsRepo repository.NewsRepository, userRepo repository.UserRepository) NewsService {
	return &newsService{newsRepo: newsRepo, userRepo: userRepo}
}

// CreateNews inserts a post after confirming the owning user exists.
func (s *newsService) CreateNews(ctx context.Context, title, content string, userID uint) (*model.News, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	news := &model.News{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return news, nil
}

func (s *newsService) GetNews(ctx context.Context, id uint) (*model.News, error) {
	news, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, err
	}
	return news, nil
}

func (s *newsService) ListNews(ctx context.Context) ([]model.News, error) {
	return s.newsRepo.List(ctx)
}

func (s *newsService) ListNewsWithAuthors(ctx context.Context) ([]model.News, error) {
	return s.newsRepo.ListWithAuthors(ctx)
}

// UpdateNews overwrites only the fields present in the update.
func (s *newsService) UpdateNews(ctx context.Context, id uint, update NewsUpdate) (*model.News, error) {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, news, update)
}

func (s *newsService) DeleteNews(ctx context.Context, id uint) error {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return err
	}
	if err := s.newsRepo.Delete(ctx, news); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

// UpdateNewsAsUser updates a post only if userID owns it.
func (s *newsService) UpdateNewsAsUser(ctx context.Context, id, userID uint, update NewsUpdate) (*model.News, error) {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}
	if news.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return s.applyUpdate(ctx, news, update)
}

// DeleteNewsAsUser deletes a post only if userID owns it.
func (s *newsService) DeleteNewsAsUser(ctx context.Context, id, userID uint) error {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return err
	}
	if news.UserID != userID {
		return apperrors.ErrNotOwner
	}
	if err := s.newsRepo.Delete(ctx, news); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

func (s *newsService) applyUpdate(ctx context.Context, news *model.News, update NewsUpdate) (*model.News, error) {
	if update.Title != nil {
		news.Title = *update.Title
	}
	if update.Content != nil {
		news.Content = *update.Content
	}
	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return news, nil
}
