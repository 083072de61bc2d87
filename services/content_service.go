package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/repositories"
	"github.com/google/uuid"
)

const defaultArticleLimit = 50

type ListArticlesInput struct {
	TeamID   *uuid.UUID
	LeagueID *uuid.UUID
	Category *models.ContentCategory
	Limit    int
	Offset   int
}

type ContentService interface {
	GetArticleByID(ctx context.Context, articleID uuid.UUID) (*models.NewsArticle, error)
	ListArticles(ctx context.Context, input ListArticlesInput) ([]models.NewsArticle, error)
}

type contentService struct {
	contentRepo repositories.ContentRepository
	classifier  ContentClassifier
}

func NewContentService(contentRepo repositories.ContentRepository, classifier ContentClassifier) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		classifier:  classifier,
	}
}

func (s *contentService) GetArticleByID(ctx context.Context, articleID uuid.UUID) (*models.NewsArticle, error) {
	article, err := s.contentRepo.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article %s: %w", articleID, err)
	}
	s.fillCategory(article)
	return article, nil
}

func (s *contentService) ListArticles(ctx context.Context, input ListArticlesInput) ([]models.NewsArticle, error) {
	limit := input.Limit
	if limit < 1 || limit > defaultArticleLimit {
		limit = defaultArticleLimit
	}

	articles, err := s.contentRepo.List(ctx, repositories.ListArticlesFilter{
		TeamID:   input.TeamID,
		LeagueID: input.LeagueID,
		Category: input.Category,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	for i := range articles {
		s.fillCategory(&articles[i])
	}
	return articles, nil
}

// fillCategory дозаполняет рубрику на чтении, если инжест её не проставил.
func (s *contentService) fillCategory(article *models.NewsArticle) {
	if article.Category != nil {
		return
	}
	result := s.classifier.Classify(article.Title, article.Summary)
	article.Category = &result.Category
}
