package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/courtside/sports-platform/cache"
	"github.com/courtside/sports-platform/repositories"
	"github.com/courtside/sports-platform/storage"
	"github.com/google/uuid"
)

const teamViewCacheTTL = 5 * time.Minute

type TeamService interface {
	GetTeamByID(ctx context.Context, teamID uuid.UUID) (*TeamView, error)
	UpdateTeamLogo(ctx context.Context, teamID uuid.UUID, contentType string, body io.Reader) (*TeamView, error)
}

type teamService struct {
	teamRepo       repositories.TeamRepository
	membershipRepo repositories.MembershipRepository
	cache          cache.Cache
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	membershipRepo repositories.MembershipRepository,
	cacheClient cache.Cache,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		cache:          cacheClient,
		uploader:       uploader,
		logger:         logger,
	}
}

func teamViewCacheKey(teamID uuid.UUID) string {
	return "team:view:" + teamID.String()
}

// GetTeamByID отдаёт представление одной команды тем же путём агрегации,
// что и листинг: членства, первичная лига, логотипы. Ответ кэшируется.
func (s *teamService) GetTeamByID(ctx context.Context, teamID uuid.UUID) (*TeamView, error) {
	key := teamViewCacheKey(teamID)
	var cached TeamView
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.logger.Warn("team view cache read failed", slog.Any("error", err))
	} else if hit {
		return &cached, nil
	}

	view, err := s.buildTeamView(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, view, teamViewCacheTTL); err != nil {
		s.logger.Warn("team view cache write failed", slog.Any("error", err))
	}
	return view, nil
}

// UpdateTeamLogo загружает логотип в хранилище, сохраняет ключ и
// сбрасывает кэшированное представление команды.
func (s *teamService) UpdateTeamLogo(ctx context.Context, teamID uuid.UUID, contentType string, body io.Reader) (*TeamView, error) {
	if s.uploader == nil {
		return nil, ErrLogoStorageDisabled
	}

	ext, err := logoExtensionForContentType(contentType)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team %s for logo update: %w", teamID, err)
	}

	key := fmt.Sprintf("teams/%s/logo%s", team.ID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, team.ID, &key); err != nil {
		return nil, fmt.Errorf("failed to persist team logo key: %w", err)
	}

	if err := s.cache.Invalidate(ctx, teamViewCacheKey(team.ID)); err != nil {
		s.logger.Warn("team view cache invalidation failed", slog.Any("error", err))
	}

	return s.buildTeamView(ctx, team.ID)
}

func (s *teamService) buildTeamView(ctx context.Context, teamID uuid.UUID) (*TeamView, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %s: %w", teamID, err)
	}

	memberships, err := s.membershipRepo.ListActiveByTeamID(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships for team %s: %w", teamID, err)
	}

	infos := make([]LeagueInfo, len(memberships))
	for i, m := range memberships {
		infos[i] = leagueInfoWithUploaderLogo(m, s.uploader)
	}

	view := NewTeamView(team, ResolvePrimaryLeague(infos), s.uploader)
	return &view, nil
}

func logoExtensionForContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrLogoContentType, contentType)
	}
}
