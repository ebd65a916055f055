package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/tracing"
	"github.com/ldnsports/ldnsports_api/util/values"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

func (api *API) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  api.Config.GoogleRedirectURL,
		ClientID:     api.Config.GoogleClientID,
		ClientSecret: api.Config.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/google/login", Handler(api.LoginWithGoogle))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/me", Handler(api.CurrentAdmin))
	})

	return mux
}

// LoginWithGoogle exchanges a Google access token for an API token.
// Only emails already on the admin allowlist may log in; there is no
// self-registration.
func (api *API) LoginWithGoogle(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	token := &oauth2.Token{AccessToken: req.AccessToken}
	client := api.googleOauthConfig().Client(r.Context(), token)
	userInfoReq, err := http.NewRequestWithContext(r.Context(), http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}
	resp, err := client.Do(userInfoReq)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}
	defer resp.Body.Close()

	var userInfo struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return respondWithError(err, "failed to decode user info", values.Error, &tc)
	}

	admin, err := api.GetAdminByEmail(r.Context(), userInfo.Email)
	if err != nil {
		return respondWithError(err, "email is not on the admin allowlist", values.NotAuthorised, &tc)
	}

	tokenString, expiresAt, err := api.createToken(admin.Email)
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Login successful",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"token":      tokenString,
			"expires_at": expiresAt,
			"admin":      admin,
		},
	}
}

func (api *API) CurrentAdmin(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	admin, err := util.GetAdminFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get admin from context", values.NotAuthorised, &tc)
	}

	return &ServerResponse{
		Message:    "Admin retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       admin,
	}
}
