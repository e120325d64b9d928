package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/autoshop/internal/domain"
	"github.com/msomdec/autoshop/internal/service"
)

// UserHandler translates user HTTP requests into UserService calls.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleList responds with every user, car association included.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleGet responds with a single user by id, car association included.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("get user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleCreate creates a user from the request body.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Create(r.Context(), req.Name, req.Email, req.Password, req.CarID)
	if err != nil {
		writeUserError(w, err, 0)
		return
	}

	w.Header().Set("Location", "/api/users/"+strconv.FormatInt(user.ID, 10))
	writeJSON(w, http.StatusCreated, toUserDTO(user))
}

// HandleUpdate overwrites an existing user from the request body. A null
// carId clears the car association.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req userRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.users.Update(r.Context(), id, req.Name, req.Email, req.Password, req.CarID); err != nil {
		writeUserError(w, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a user. No side effects on cars.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("delete user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeUserError maps user mutation failures onto status codes. Duplicate
// email and not-found are distinct channels.
func writeUserError(w http.ResponseWriter, err error, id int64) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "email already exists")
	case errors.Is(err, domain.ErrUnknownCar):
		writeError(w, http.StatusBadRequest, "referenced car does not exist")
	default:
		slog.Error("user mutation", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
