package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
)

var ErrArticleNotFound = errors.New("news article not found")

type ListArticlesFilter struct {
	TeamID   *uuid.UUID
	LeagueID *uuid.UUID
	Category *models.ContentCategory
	Limit    int
	Offset   int
}

type ContentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error)
	List(ctx context.Context, filter ListArticlesFilter) ([]models.NewsArticle, error)
}

type postgresContentRepository struct {
	db *sql.DB
}

func NewPostgresContentRepository(db *sql.DB) ContentRepository {
	return &postgresContentRepository{db: db}
}

const articleSelect = `
	SELECT id, title, summary, body, team_id, league_id, category, published_at, created_at
	FROM news_articles`

func (r *postgresContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error) {
	query := articleSelect + ` WHERE id = $1`

	a := &models.NewsArticle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Summary, &a.Body, &a.TeamID, &a.LeagueID,
		&a.Category, &a.PublishedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article %s: %w", id, err)
	}
	return a, nil
}

func (r *postgresContentRepository) List(ctx context.Context, filter ListArticlesFilter) ([]models.NewsArticle, error) {
	query := articleSelect + ` WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.TeamID != nil {
		query += fmt.Sprintf(" AND team_id = $%d", argID)
		args = append(args, *filter.TeamID)
		argID++
	}
	if filter.LeagueID != nil {
		query += fmt.Sprintf(" AND league_id = $%d", argID)
		args = append(args, *filter.LeagueID)
		argID++
	}
	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argID)
		args = append(args, *filter.Category)
		argID++
	}

	query += " ORDER BY published_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.NewsArticle, 0)
	for rows.Next() {
		var a models.NewsArticle
		if scanErr := rows.Scan(
			&a.ID, &a.Title, &a.Summary, &a.Body, &a.TeamID, &a.LeagueID,
			&a.Category, &a.PublishedAt, &a.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", scanErr)
		}
		articles = append(articles, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}
