package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/divisions", handler.ListDivisions)
	mux.HandleFunc("GET /v1/divisions/{divisionID}", handler.GetDivision)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/standings", handler.ListDivisionStandings)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/games", handler.ListGames)
	mux.HandleFunc("GET /v1/standings", handler.ListAllStandings)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /v1/locations", handler.ListLocations)
	mux.HandleFunc("GET /v1/locations/{locationID}", handler.GetLocation)

	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, role string) {
	admin := func(fn http.HandlerFunc) http.Handler {
		return RequireAdmin(verifier, role, fn)
	}

	mux.Handle("POST /v1/divisions", admin(handler.CreateDivision))
	mux.Handle("PUT /v1/divisions/{divisionID}", admin(handler.UpdateDivision))
	mux.Handle("DELETE /v1/divisions/{divisionID}", admin(handler.DeleteDivision))

	mux.Handle("POST /v1/teams", admin(handler.CreateTeam))
	mux.Handle("PUT /v1/teams/{teamID}", admin(handler.UpdateTeam))
	mux.Handle("DELETE /v1/teams/{teamID}", admin(handler.DeleteTeam))

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))

	mux.Handle("POST /v1/locations", admin(handler.CreateLocation))
	mux.Handle("PUT /v1/locations/{locationID}", admin(handler.UpdateLocation))
	mux.Handle("DELETE /v1/locations/{locationID}", admin(handler.DeleteLocation))

	mux.Handle("POST /v1/games", admin(handler.CreateGame))
	mux.Handle("PUT /v1/games/{gameID}", admin(handler.UpdateGame))
	mux.Handle("DELETE /v1/games/{gameID}", admin(handler.DeleteGame))
}
