package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/tracing"
	"github.com/ldnsports/ldnsports_api/util/values"
)

func (api *API) AdminRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodGet, "/submissions", Handler(api.ListSubmissionsHandler))
		r.Method(http.MethodPost, "/groups/{groupID}/approve", Handler(api.ApproveGroupHandler))
		r.Method(http.MethodPost, "/groups/{groupID}/reject", Handler(api.RejectGroupHandler))

		r.Method(http.MethodPost, "/scrapers/{provider}", Handler(api.TriggerScraperHandler))
		r.Method(http.MethodGet, "/scrapers/runs", Handler(api.ListScraperRunsHandler))

		r.Group(func(sr chi.Router) {
			sr.Use(api.RequireSuperAdmin)
			sr.Method(http.MethodGet, "/admins", Handler(api.ListAdminsHandler))
			sr.Method(http.MethodPost, "/admins", Handler(api.CreateAdminHandler))
			sr.Method(http.MethodDelete, "/admins/{adminID}", Handler(api.DeleteAdminHandler))
		})
	})

	return mux
}

func (api *API) ListSubmissionsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groups, err := api.ListSubmissions(r.Context())
	if err != nil {
		return respondWithError(err, "unable to list submissions", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Submissions retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}

func (api *API) ApproveGroupHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return api.moderateGroup(r, model.StatusApproved)
}

func (api *API) RejectGroupHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return api.moderateGroup(r, model.StatusRejected)
}

func (api *API) moderateGroup(r *http.Request, target model.GroupStatus) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	admin, err := util.GetAdminFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get admin from context", values.NotAuthorised, &tc)
	}

	groupID, err := util.StringToUUID(chi.URLParam(r, "groupID"))
	if err != nil {
		return respondWithError(err, "invalid group id", values.BadRequestBody, &tc)
	}

	// Reason is optional and only recorded in the audit trail.
	var req struct {
		Reason string `json:"reason"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
			return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
		}
	}

	group, status, message, err := api.ModerateGroupHelper(r.Context(), admin, groupID, target, req.Reason)
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

func (api *API) ListAdminsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	admins, err := api.ListAdmins(r.Context())
	if err != nil {
		return respondWithError(err, "unable to list admins", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Admins retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       admins,
	}
}

func (api *API) CreateAdminHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	actor, err := util.GetAdminFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get admin from context", values.NotAuthorised, &tc)
	}

	var req model.CreateAdminRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	admin, status, message, err := api.CreateAdminHelper(r.Context(), actor, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       admin,
	}
}

func (api *API) DeleteAdminHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	actor, err := util.GetAdminFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get admin from context", values.NotAuthorised, &tc)
	}

	adminID, err := util.StringToUUID(chi.URLParam(r, "adminID"))
	if err != nil {
		return respondWithError(err, "invalid admin id", values.BadRequestBody, &tc)
	}

	status, message, err := api.DeleteAdminHelper(r.Context(), actor, adminID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
