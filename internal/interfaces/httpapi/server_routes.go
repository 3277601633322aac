package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{id}", handler.GetSeason)
	mux.HandleFunc("GET /v1/circuits", handler.ListCircuits)
	mux.HandleFunc("GET /v1/circuits/{id}", handler.GetCircuit)
	mux.HandleFunc("GET /v1/drivers", handler.ListDrivers)
	mux.HandleFunc("GET /v1/drivers/{id}", handler.GetDriver)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{id}", handler.GetTeam)
	mux.HandleFunc("GET /v1/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/rounds/{id}", handler.GetRound)
	mux.HandleFunc("GET /v1/rounds/{id}/sessions", handler.ListSessionsByRound)
	mux.HandleFunc("GET /v1/sessions/{id}", handler.GetSession)
	mux.HandleFunc("GET /v1/sessions/{id}/results", handler.ListResultsBySession)
	mux.HandleFunc("GET /v1/results/{id}", handler.GetResult)
	mux.HandleFunc("GET /v1/teamdrivers", handler.ListTeamDrivers)
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/import/all", handler.TriggerImportAll)
	mux.HandleFunc("POST /v1/import/seasons", handler.TriggerImportSeasons)
	mux.HandleFunc("POST /v1/import/circuits", handler.TriggerImportCircuits)
	mux.HandleFunc("POST /v1/import/drivers", handler.TriggerImportDrivers)
	mux.HandleFunc("POST /v1/import/teams", handler.TriggerImportTeams)
	mux.HandleFunc("POST /v1/import/rounds/{year}", handler.TriggerImportRounds)
	mux.HandleFunc("POST /v1/import/teamdrivers/{year}", handler.TriggerImportTeamDrivers)
	mux.HandleFunc("GET /v1/import/status", handler.ListImportJobs)
	mux.HandleFunc("GET /v1/import/status/{id}", handler.GetImportJob)
	mux.HandleFunc("DELETE /v1/import/status", handler.ClearImportJobs)
	mux.HandleFunc("DELETE /v1/import/status/{id}", handler.ClearImportJob)
}
