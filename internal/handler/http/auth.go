package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.SignUp(ctx, request)
	if err != nil {
		switch {
		case writeViolations(w, err):
			log.Err(err).Msg("signup payload rejected")
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			_, _ = utils.WriteText(w, msgEmailExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", user.ID).Msg("user signed up")

	w.Header().Set("Location", fmt.Sprintf("/users/%s", user.ID))
	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, id, request)
	if err != nil {
		switch {
		case writeViolations(w, err):
			log.Err(err).Str("id", id).Msg("update payload rejected")
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", id).Msg("no user found with given id")
			w.WriteHeader(http.StatusNotFound)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("id", id).Msg("email already exists")
			_, _ = utils.WriteText(w, msgEmailExists, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrSamePassword):
			log.Err(err).Str("id", id).Msg("new password equals the old one")
			_, _ = utils.WriteText(w, msgSamePassword, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", user.ID).Msg("user updated")
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Login(ctx, request)
	if err != nil {
		switch {
		case writeViolations(w, err):
			log.Err(err).Msg("login payload rejected")
			return
		case errors.Is(err, service.ErrWrongCredentials):
			// one message for both unknown email and wrong password
			log.Err(err).Msg("login rejected")
			_, _ = utils.WriteText(w, msgWrongCredentials, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", user.ID).Msg("user logged in successfully")
	_, _ = utils.WriteText(w, "Welcome "+user.Name, http.StatusOK)
}

// writeViolations renders a structured 400 response if err carries field
// violations from the validation layer. It reports whether it handled err.
func writeViolations(w http.ResponseWriter, err error) bool {
	violations, ok := validators.AsViolations(err)
	if !ok {
		return false
	}

	_, _ = utils.WriteJSON(w, violations, http.StatusBadRequest)
	return true
}
