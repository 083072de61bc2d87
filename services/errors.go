package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed      = errors.New("validation failed")
	ErrInvalidPage           = errors.New("page must be at least 1")
	ErrInvalidPageSize       = errors.New("page size must be between 1 and 100")
	ErrInvalidSuggestLimit   = errors.New("suggestion limit must be between 1 and 25")
	ErrInvalidCompetition    = errors.New("invalid competition type")
	ErrInvalidOnboardingStep = errors.New("invalid onboarding step")
	ErrLogoContentType       = errors.New("unsupported logo content type")
	ErrLogoStorageDisabled   = errors.New("logo storage is not configured")

	// Ошибки, специфичные для сущностей (могут дублировать ErrNotFound, но дают больше контекста)
	ErrTeamNotFound    = errors.New("team not found")
	ErrLeagueNotFound  = errors.New("league not found")
	ErrArticleNotFound = errors.New("news article not found")
)
