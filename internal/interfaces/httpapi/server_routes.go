package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/window", handler.GetPredictionWindow)
	mux.HandleFunc("GET /v1/matches/{matchID}/popularity", handler.GetMatchPopularity)
	mux.HandleFunc("GET /v1/teams/{teamName}/squad", handler.GetTeamSquad)
	mux.HandleFunc("GET /v1/leaderboards/global", handler.GetGlobalLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/countries/{country}", handler.GetCountryLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedProfileRoutes(mux, handler, verifier)
	registerAuthorizedPredictionRoutes(mux, handler, verifier)
	registerAuthorizedLeagueRoutes(mux, handler, verifier)
	registerAuthorizedLeaderboardRoutes(mux, handler, verifier)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/internal/results/{matchID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeclareMatchResult)))
}

func registerAuthorizedProfileRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/profile", RequireAuth(verifier, http.HandlerFunc(handler.RegisterProfile)))
	mux.Handle("GET /v1/profile/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyProfile)))
	mux.Handle("POST /v1/profile/me/welcome-seen", RequireAuth(verifier, http.HandlerFunc(handler.MarkWelcomeSeen)))
}

func registerAuthorizedPredictionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/matches/{matchID}/prediction", RequireAuth(verifier, http.HandlerFunc(handler.GetMyPrediction)))
	mux.Handle("POST /v1/matches/{matchID}/prediction", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPrediction)))
	mux.Handle("PUT /v1/matches/{matchID}/prediction/score", RequireAuth(verifier, http.HandlerFunc(handler.SaveScorePrediction)))
}

func registerAuthorizedLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListMyLeagues)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
	mux.Handle("GET /v1/leagues/{code}/members", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagueMembers)))
}

func registerAuthorizedLeaderboardRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leaderboards/leagues/{code}", RequireAuth(verifier, http.HandlerFunc(handler.GetLeagueLeaderboard)))
	mux.Handle("GET /v1/leaderboards/global/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyGlobalRank)))
	mux.Handle("GET /v1/leaderboards/countries/{country}/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyCountryRank)))
	mux.Handle("GET /v1/leaderboards/leagues/{code}/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyLeagueRank)))
}
