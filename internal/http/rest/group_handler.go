package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/tracing"
	"github.com/ldnsports/ldnsports_api/util/values"
)

func (api *API) GroupRoutes() chi.Router {
	mux := chi.NewRouter()

	// Public submission and directory browsing. Listings only become
	// visible here after moderation approves them.
	mux.Method(http.MethodPost, "/", Handler(api.SubmitGroupHandler))
	mux.Method(http.MethodGet, "/", Handler(api.ListGroupsHandler))
	mux.Method(http.MethodGet, "/{groupID}", Handler(api.GetGroupByIDHandler))

	return mux
}

func (api *API) SubmitGroupHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.SubmitGroupRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.SubmitGroupHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       group,
	}
}

func (api *API) ListGroupsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	sport := r.URL.Query().Get("sport")
	borough := r.URL.Query().Get("borough")

	groups, status, message, err := api.ListApprovedGroupsHelper(r.Context(), sport, borough)
	if err != nil {
		return respondWithError(err, "unable to get groups", values.Failed, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       groups,
	}
}

func (api *API) GetGroupByIDHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := util.StringToUUID(chi.URLParam(r, "groupID"))
	if err != nil {
		return respondWithError(err, "invalid group id", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.GetApprovedGroupHelper(r.Context(), groupID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       group,
	}
}
