package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/repositories"
	"github.com/courtside/sports-platform/storage"
	"github.com/google/uuid"
)

type ListLeaguesInput struct {
	CountryCodes     []string
	CompetitionTypes []models.CompetitionType
	LeagueLevel      *int
}

type LeagueService interface {
	GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context, input ListLeaguesInput) ([]models.League, error)
	ListLeagueTeams(ctx context.Context, leagueID uuid.UUID) ([]TeamView, error)
	UpdateLeagueLogo(ctx context.Context, leagueID uuid.UUID, contentType string, body io.Reader) (*models.League, error)
}

type leagueService struct {
	leagueRepo     repositories.LeagueRepository
	teamRepo       repositories.TeamRepository
	membershipRepo repositories.MembershipRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewLeagueService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	membershipRepo repositories.MembershipRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) LeagueService {
	return &leagueService{
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		uploader:       uploader,
		logger:         logger,
	}
}

func (s *leagueService) GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %s: %w", leagueID, err)
	}
	populateLeagueLogoURL(league, s.uploader)
	return league, nil
}

func (s *leagueService) ListLeagues(ctx context.Context, input ListLeaguesInput) ([]models.League, error) {
	for _, t := range input.CompetitionTypes {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCompetition, t)
		}
	}

	leagues, err := s.leagueRepo.List(ctx, repositories.ListLeaguesFilter{
		CountryCodes:     normalizeCountryCodes(input.CountryCodes),
		CompetitionTypes: input.CompetitionTypes,
		LeagueLevel:      input.LeagueLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	for i := range leagues {
		populateLeagueLogoURL(&leagues[i], s.uploader)
	}
	return leagues, nil
}

// ListLeagueTeams отдаёт представления всех команд с активным членством в
// лиге. У каждой команды разрешается её собственный полный набор членств,
// поэтому первичная лига команды может отличаться от запрошенной.
func (s *leagueService) ListLeagueTeams(ctx context.Context, leagueID uuid.UUID) ([]TeamView, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %s: %w", leagueID, err)
	}

	leagueMemberships, err := s.membershipRepo.ListActiveByLeagueID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships for league %s: %w", leagueID, err)
	}
	if len(leagueMemberships) == 0 {
		return []TeamView{}, nil
	}

	teamIDs := make([]uuid.UUID, len(leagueMemberships))
	for i, m := range leagueMemberships {
		teamIDs[i] = m.TeamID
	}

	teams, err := s.teamRepo.ListByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for league %s: %w", leagueID, err)
	}
	membershipsByTeam, err := s.membershipRepo.ListActiveByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team memberships for league %s: %w", leagueID, err)
	}

	views := make([]TeamView, 0, len(teams))
	for _, team := range teams {
		memberships := membershipsByTeam[team.ID]
		if len(memberships) == 0 {
			s.logger.Warn("league member team has no active memberships, skipping",
				slog.String("team_id", team.ID.String()), slog.String("league_id", leagueID.String()))
			continue
		}
		infos := make([]LeagueInfo, len(memberships))
		for i, m := range memberships {
			infos[i] = leagueInfoWithUploaderLogo(m, s.uploader)
		}
		views = append(views, NewTeamView(&team, ResolvePrimaryLeague(infos), s.uploader))
	}
	return views, nil
}

func (s *leagueService) UpdateLeagueLogo(ctx context.Context, leagueID uuid.UUID, contentType string, body io.Reader) (*models.League, error) {
	if s.uploader == nil {
		return nil, ErrLogoStorageDisabled
	}

	ext, err := logoExtensionForContentType(contentType)
	if err != nil {
		return nil, err
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to load league %s for logo update: %w", leagueID, err)
	}

	key := fmt.Sprintf("leagues/%s/logo%s", league.ID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("failed to upload league logo: %w", err)
	}
	if err := s.leagueRepo.UpdateLogoKey(ctx, league.ID, &key); err != nil {
		return nil, fmt.Errorf("failed to persist league logo key: %w", err)
	}

	league.LogoKey = &key
	populateLeagueLogoURL(league, s.uploader)
	return league, nil
}
