package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/justplay-app/league-manager/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	metaHandler *handlers.MetaHandler,
	leagueHandler *handlers.LeagueHandler,
	memberHandler *handlers.MemberHandler,
	teamHandler *handlers.TeamHandler,
	scheduleHandler *handlers.ScheduleHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	router.Get("/", metaHandler.RootHandler)
	router.Get("/schema", metaHandler.SchemaHandler)

	router.Route("/api/leagues", func(r chi.Router) {
		r.Post("/", leagueHandler.CreateHandler)
		r.Get("/", leagueHandler.ListHandler)
		r.Post("/join/{code}", memberHandler.JoinByCodeHandler)

		r.Route("/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler.GetByIDHandler)
			r.Patch("/", leagueHandler.UpdateDetailsHandler)
			r.Post("/avatar", leagueHandler.UploadAvatarHandler)
			r.Post("/join", memberHandler.JoinHandler)

			r.Post("/teams", teamHandler.AddTeamHandler)
			r.Delete("/teams/{teamID}", teamHandler.RemoveTeamHandler)
			r.Post("/teams/{teamID}/avatar", teamHandler.UploadAvatarHandler)
			r.Post("/players", teamHandler.AddPlayerHandler)
			r.Delete("/teams/{teamID}/players/{playerID}", teamHandler.RemovePlayerHandler)

			r.Post("/schedule", scheduleHandler.GenerateHandler)
			r.Get("/schedule", scheduleHandler.GetHandler)
			r.Post("/results", scheduleHandler.RecordResultHandler)
			r.Get("/standings", scheduleHandler.StandingsHandler)
		})
	})

	router.Get("/ws/leagues/{leagueID}", webSocketHandler.ServeWs)
}
