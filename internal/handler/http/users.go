package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteText(w, greetingBody, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users := h.services.UserService.ListUsers(r.Context())

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) userByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("no user found with given id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user retrieved successfully")
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) userByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := chi.URLParam(r, "email")

	user, err := h.services.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	namePart := r.URL.Query().Get("name")

	matched := h.services.UserService.SearchUsers(ctx, namePart)
	if len(matched) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, matched, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("id", id).Msg("no user found with given id")
			w.WriteHeader(http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during user deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
