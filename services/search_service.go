package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/courtside/sports-platform/cache"
	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/repositories"
	"github.com/courtside/sports-platform/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	DefaultSuggestLimit = 10
	MaxSuggestLimit     = 25

	// Сколько значений тянуть из каждой категории до слияния: после слияния
	// трёх категорий обрезка до лимита всё равно произойдёт в памяти.
	suggestFetchPerField = 25

	suggestCacheTTL = time.Minute
)

// TeamSearchInput — параметры листинга/поиска команд. Все фильтры
// конъюнктивны. Границы Page/PageSize проверяет HTTP-слой; сервис
// лишь подставляет значения по умолчанию.
type TeamSearchInput struct {
	Query            string
	SportID          *uuid.UUID
	LeagueIDs        []uuid.UUID
	CountryCodes     []string
	CompetitionTypes []models.CompetitionType
	LeagueLevels     []int
	FoundingYearMin  *int
	FoundingYearMax  *int
	MultiLeagueOnly  bool
	Page             int
	PageSize         int
}

// SearchMeta — наблюдаемость поискового запроса; на поведение не влияет.
type SearchMeta struct {
	Query          string   `json:"query"`
	TotalMatches   int      `json:"total_matches"`
	TookMS         int64    `json:"took_ms"`
	FiltersApplied []string `json:"filters_applied"`
}

type TeamSearchResult struct {
	Items    []TeamView  `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Pages    int         `json:"pages"`
	Meta     *SearchMeta `json:"search_meta,omitempty"`
}

type Suggestion struct {
	Suggestion   string   `json:"suggestion"`
	Type         string   `json:"type"`
	TeamCount    int      `json:"team_count"`
	PreviewTeams []string `json:"preview_teams"`
}

type SuggestionResult struct {
	Query          string       `json:"query"`
	Suggestions    []Suggestion `json:"suggestions"`
	ResponseTimeMS int64        `json:"response_time_ms"`
}

type SearchService interface {
	SearchTeams(ctx context.Context, input TeamSearchInput) (*TeamSearchResult, error)
	SuggestTeams(ctx context.Context, query string, limit int) (*SuggestionResult, error)
}

type searchService struct {
	teamRepo       repositories.TeamRepository
	membershipRepo repositories.MembershipRepository
	cache          cache.Cache
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewSearchService(
	teamRepo repositories.TeamRepository,
	membershipRepo repositories.MembershipRepository,
	cacheClient cache.Cache,
	uploader storage.FileUploader,
	logger *slog.Logger,
) SearchService {
	return &searchService{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		cache:          cacheClient,
		uploader:       uploader,
		logger:         logger,
	}
}

// scoredTeam — промежуточный кандидат до сортировки и пагинации.
type scoredTeam struct {
	team     models.Team
	resolved PrimaryLeagueResult
	score    float64
	matches  []SearchMatch
}

// SearchTeams выполняет листинг/поиск: выборка кандидатов по фильтрам,
// пакетная загрузка членств, разрешение первичной лиги, оценка релевантности
// при наличии запроса, сортировка и только затем пагинация.
func (s *searchService) SearchTeams(ctx context.Context, input TeamSearchInput) (*TeamSearchResult, error) {
	started := time.Now()

	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	query := strings.ToLower(strings.TrimSpace(input.Query))

	filter := repositories.TeamListFilter{
		SportID:          input.SportID,
		LeagueIDs:        input.LeagueIDs,
		CountryCodes:     normalizeCountryCodes(input.CountryCodes),
		CompetitionTypes: input.CompetitionTypes,
		LeagueLevels:     input.LeagueLevels,
		FoundingYearMin:  input.FoundingYearMin,
		FoundingYearMax:  input.FoundingYearMax,
		MultiLeagueOnly:  input.MultiLeagueOnly,
	}
	if query != "" {
		filter.Query = &query
	}

	candidates, err := s.teamRepo.ListCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team candidates: %w", err)
	}

	teamIDs := make([]uuid.UUID, len(candidates))
	for i, t := range candidates {
		teamIDs[i] = t.ID
	}
	membershipsByTeam, err := s.membershipRepo.ListActiveByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships for candidates: %w", err)
	}

	scored := make([]scoredTeam, 0, len(candidates))
	for _, team := range candidates {
		memberships := membershipsByTeam[team.ID]
		if len(memberships) == 0 {
			// Команду без единой активной лиги нельзя ни ранжировать,
			// ни показать с первичной лигой — пропускаем целиком.
			continue
		}
		infos := make([]LeagueInfo, len(memberships))
		for i, m := range memberships {
			infos[i] = leagueInfoWithUploaderLogo(m, s.uploader)
		}
		entry := scoredTeam{
			team:     team,
			resolved: ResolvePrimaryLeague(infos),
		}
		if query != "" {
			entry.score, entry.matches = ScoreTeam(&team, query)
			if entry.score == 0 {
				continue
			}
		}
		scored = append(scored, entry)
	}

	if query != "" {
		// Релевантность по убыванию; равные очки — в естественном порядке
		// (market, name), чтобы выдача была стабильной.
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			if scored[i].team.Market != scored[j].team.Market {
				return scored[i].team.Market < scored[j].team.Market
			}
			return scored[i].team.Name < scored[j].team.Name
		})
	}

	total := len(scored)
	pages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]TeamView, 0, end-start)
	for _, entry := range scored[start:end] {
		team := entry.team
		if query != "" {
			items = append(items, NewSearchTeamView(&team, entry.resolved, entry.score, entry.matches, s.uploader))
		} else {
			items = append(items, NewTeamView(&team, entry.resolved, s.uploader))
		}
	}

	result := &TeamSearchResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Pages:    pages,
	}
	if query != "" {
		result.Meta = &SearchMeta{
			Query:          query,
			TotalMatches:   total,
			TookMS:         time.Since(started).Milliseconds(),
			FiltersApplied: appliedFilterNames(input),
		}
	}
	return result, nil
}

// SuggestTeams собирает подсказки автодополнения по имени, рынку и
// аббревиатуре. Это отдельная ось ранжирования: счёт идёт по количеству
// команд на значение, а не по текстовой релевантности поиска.
func (s *searchService) SuggestTeams(ctx context.Context, query string, limit int) (*SuggestionResult, error) {
	started := time.Now()

	if limit < 1 || limit > MaxSuggestLimit {
		limit = DefaultSuggestLimit
	}

	prefix := strings.ToLower(strings.TrimSpace(query))
	if len(prefix) < 1 {
		// Слишком короткий ввод: ноль подсказок, ноль обращений к хранилищу.
		return &SuggestionResult{Query: query, Suggestions: []Suggestion{}}, nil
	}

	cacheKey := fmt.Sprintf("suggest:%s:%d", prefix, limit)
	var cached SuggestionResult
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		s.logger.Warn("suggestion cache read failed", slog.Any("error", err))
	} else if hit {
		cached.ResponseTimeMS = time.Since(started).Milliseconds()
		return &cached, nil
	}

	fields := []struct {
		field repositories.SuggestField
		label string
	}{
		{repositories.SuggestFieldName, "team_name"},
		{repositories.SuggestFieldMarket, "market"},
		{repositories.SuggestFieldAbbreviation, "abbreviation"},
	}

	perField := make([][]Suggestion, len(fields))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fields {
		i, f := i, f
		g.Go(func() error {
			rows, err := s.teamRepo.SuggestValues(gctx, f.field, prefix, suggestFetchPerField)
			if err != nil {
				return fmt.Errorf("failed to gather %s suggestions: %w", f.label, err)
			}
			suggestions := make([]Suggestion, len(rows))
			for j, row := range rows {
				suggestions[j] = Suggestion{
					Suggestion:   row.Value,
					Type:         f.label,
					TeamCount:    row.TeamCount,
					PreviewTeams: row.PreviewTeams,
				}
			}
			perField[i] = suggestions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Suggestion, 0, len(fields)*suggestFetchPerField)
	for _, batch := range perField {
		merged = append(merged, batch...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].TeamCount != merged[j].TeamCount {
			return merged[i].TeamCount > merged[j].TeamCount
		}
		return merged[i].Suggestion < merged[j].Suggestion
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	result := &SuggestionResult{
		Query:          query,
		Suggestions:    merged,
		ResponseTimeMS: time.Since(started).Milliseconds(),
	}
	if err := s.cache.SetJSON(ctx, cacheKey, result, suggestCacheTTL); err != nil {
		s.logger.Warn("suggestion cache write failed", slog.Any("error", err))
	}
	return result, nil
}

func normalizeCountryCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func appliedFilterNames(input TeamSearchInput) []string {
	applied := make([]string, 0, 8)
	if input.SportID != nil {
		applied = append(applied, "sport_id")
	}
	if len(input.LeagueIDs) > 0 {
		applied = append(applied, "league_ids")
	}
	if len(input.CountryCodes) > 0 {
		applied = append(applied, "country_codes")
	}
	if len(input.CompetitionTypes) > 0 {
		applied = append(applied, "competition_types")
	}
	if len(input.LeagueLevels) > 0 {
		applied = append(applied, "league_levels")
	}
	if input.FoundingYearMin != nil || input.FoundingYearMax != nil {
		applied = append(applied, "founding_year")
	}
	if input.MultiLeagueOnly {
		applied = append(applied, "multi_league_only")
	}
	return applied
}
