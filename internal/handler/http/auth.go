package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"github.com/MKhiriev/go-notes-auth/models"
)

// maxRequestBodyBytes caps credential payloads; real ones are a few hundred bytes.
const maxRequestBodyBytes = 64 << 10

// decodeBody reads a JSON body of at most maxRequestBodyBytes into dst. On
// failure it writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	log := logger.FromRequest(r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
		utils.WriteJSONError(w, ErrRequestTooLarge.Error(), http.StatusRequestEntityTooLarge)
		return false
	}

	log.Err(err).Msg("invalid JSON was passed")
	utils.WriteJSONError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
	return false
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("email", req.Email).Msg("account created")

	w.Header().Set("Authorization", "Bearer "+result.AccessToken)
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	log.Debug().Str("email", req.Email).Msg("login attempt")

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+result.AccessToken)
	utils.WriteJSON(w, result, http.StatusOK)
}

// me returns the identity stored in the context by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	email, _ := utils.GetEmailFromContext(ctx)

	utils.WriteJSON(w, models.Identity{UserID: userID, Email: email}, http.StatusOK)
}
