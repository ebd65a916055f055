package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/tracing"
	"github.com/ldnsports/ldnsports_api/util/values"
)

// TriggerScraperHandler runs one provider sweep synchronously.
// ?seed=true swaps the live API call for the provider's fixed sample
// set, for demos and environments without credentials.
func (api *API) TriggerScraperHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	admin, err := util.GetAdminFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get admin from context", values.NotAuthorised, &tc)
	}

	provider := chi.URLParam(r, "provider")
	seed := r.URL.Query().Get("seed") == "true"

	result, status, message, err := api.RunScraperHelper(r.Context(), admin, provider, seed)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       result,
	}
}

func (api *API) ListScraperRunsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	runs, err := api.ListScraperRuns(r.Context())
	if err != nil {
		return respondWithError(err, "unable to list scraper runs", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Scraper runs retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       runs,
	}
}
