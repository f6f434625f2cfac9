package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /health", handler.Healthz)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
}

func registerIngestionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/ingest/players", handler.IngestPlayers)
	mux.HandleFunc("POST /v1/ingest/matches", handler.IngestMatches)
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/live/matches/{state}", handler.LiveMatches)
	mux.HandleFunc("GET /v1/live/match/{matchID}", handler.LiveMatchInfo)
	mux.HandleFunc("GET /v1/live/match/{matchID}/scorecard", handler.LiveScorecard)
	mux.HandleFunc("GET /v1/live/match/{matchID}/commentary", handler.LiveCommentary)
	mux.HandleFunc("GET /v1/live/rankings/{category}", handler.LiveRankings)
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/queries", handler.ListQueries)
	mux.HandleFunc("POST /v1/queries/run", handler.RunCustomQuery)
	mux.HandleFunc("POST /v1/queries/{queryID}/run", handler.RunCannedQuery)
}

func registerTableRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tables", handler.ListTables)
	mux.HandleFunc("GET /v1/tables/{table}", handler.DescribeTable)
	mux.HandleFunc("GET /v1/tables/{table}/rows", handler.ListTableRows)
	mux.HandleFunc("POST /v1/tables/{table}/rows", handler.InsertTableRow)
	mux.HandleFunc("PUT /v1/tables/{table}/rows/{key}", handler.UpdateTableRow)
	mux.HandleFunc("DELETE /v1/tables/{table}/rows/{key}", handler.DeleteTableRow)
}
