package routes

import (
	"net/http"

	"github.com/courtside/sports-platform/handlers"
	"github.com/courtside/sports-platform/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	teamHandler *handlers.TeamHandler,
	leagueHandler *handlers.LeagueHandler,
	contentHandler *handlers.ContentHandler,
	onboardingHandler *handlers.OnboardingHandler,
	jwtSecret []byte,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeams)
		r.Get("/suggestions", teamHandler.SuggestTeams)
		r.Get("/{teamID}", teamHandler.GetTeamByID)

		// Управление логотипами — только для администраторов
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireRole("admin"))

			r.Put("/{teamID}/logo", teamHandler.UploadTeamLogo)
		})
	})

	router.Route("/leagues", func(r chi.Router) {
		r.Get("/", leagueHandler.ListLeagues)
		r.Get("/{leagueID}", leagueHandler.GetLeagueByID)
		r.Get("/{leagueID}/teams", leagueHandler.ListLeagueTeams)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireRole("admin"))

			r.Put("/{leagueID}/logo", leagueHandler.UploadLeagueLogo)
		})
	})

	router.Route("/news", func(r chi.Router) {
		r.Get("/", contentHandler.ListArticles)
		r.Get("/{articleID}", contentHandler.GetArticleByID)
	})

	router.Route("/onboarding", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Get("/", onboardingHandler.GetStatus)
		r.Post("/{step}/complete", onboardingHandler.CompleteStep)
		r.Delete("/", onboardingHandler.Reset)
	})
}
