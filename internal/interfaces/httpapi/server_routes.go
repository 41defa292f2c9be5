package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("POST /players", handler.CreatePlayer)
	mux.HandleFunc("GET /players/{id}", handler.GetPlayer)
	mux.HandleFunc("PATCH /players/{id}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /players/{id}", handler.DeletePlayer)

	mux.HandleFunc("GET /convocations", handler.ListConvocations)
	mux.HandleFunc("POST /convocations", handler.CreateConvocation)
	mux.HandleFunc("GET /convocations/{id}", handler.GetConvocation)
	mux.HandleFunc("PUT /convocations/{id}", handler.UpdateConvocation)
	mux.HandleFunc("DELETE /convocations/{id}", handler.DeleteConvocation)
	mux.HandleFunc("POST /convocations/{id}/formation", handler.BuildConvocationFormation)

	mux.HandleFunc("GET /attendances", handler.ListAttendances)
	mux.HandleFunc("POST /attendances", handler.RecordAttendances)
	mux.HandleFunc("DELETE /attendances", handler.DeleteAttendances)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /matches", handler.ListMatches)
	mux.HandleFunc("POST /matches", handler.CreateMatch)
	mux.HandleFunc("GET /matches/all-events", handler.ListAllEvents)
	mux.HandleFunc("GET /matches/{id}", handler.GetMatch)
	mux.HandleFunc("PATCH /matches/{id}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /matches/{id}", handler.DeleteMatch)

	mux.HandleFunc("GET /matches/{id}/events", handler.ListMatchEvents)
	mux.HandleFunc("POST /matches/{id}/events", handler.AppendEvent)
	mux.HandleFunc("DELETE /matches/{id}/events", handler.PurgeEvents)
	mux.HandleFunc("DELETE /match-events/{id}", handler.DeleteEvent)
	mux.HandleFunc("POST /matches/{id}/timeline", handler.SaveTimeline)
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /matches/{id}/start", handler.StartMatch)
	mux.HandleFunc("POST /matches/{id}/halftime", handler.BreakHalf)
	mux.HandleFunc("POST /matches/{id}/second-half", handler.ResumeSecondHalf)
	mux.HandleFunc("POST /matches/{id}/end", handler.EndMatch)
	mux.HandleFunc("POST /matches/{id}/reset", handler.ResetMatch)
	mux.HandleFunc("GET /matches/{id}/live", handler.GetLiveState)
	mux.HandleFunc("GET /matches/{id}/live/ws", handler.StreamLive)
}

func registerFormationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /formations", handler.ListFormations)
	mux.HandleFunc("POST /formations", handler.SaveFormation)
	mux.HandleFunc("GET /formations/{matchId}", handler.GetFormation)
	mux.HandleFunc("PATCH /formations/{matchId}/{playerId}/minutes", handler.UpdateFormationMinutes)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /stats/players", handler.ListPlayerStats)
	mux.HandleFunc("GET /stats/players/{id}", handler.GetPlayerStats)
	mux.HandleFunc("GET /stats/matches/{id}", handler.GetMatchReport)
	mux.HandleFunc("GET /stats/team", handler.GetTeamRecord)
	mux.HandleFunc("GET /stats/attendance", handler.ListAttendanceStats)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("DELETE /admin/matches/{matchId}/complete", handler.DeleteMatchCompletely)
}
