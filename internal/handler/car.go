package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/autoshop/internal/domain"
	"github.com/msomdec/autoshop/internal/service"
)

// CarHandler translates car HTTP requests into CarService calls.
type CarHandler struct {
	cars *service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(cars *service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

// HandleList responds with every car.
func (h *CarHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListAll(r.Context())
	if err != nil {
		slog.Error("list cars", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toCarDTOs(cars))
}

// HandleGet responds with a single car by id.
func (h *CarHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	car, err := h.cars.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "car not found")
			return
		}
		slog.Error("get car", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toCarDTO(car))
}

// HandleCreate creates a car from the request body.
func (h *CarHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	car, err := h.cars.Create(r.Context(), req.Company, req.Model)
	if err != nil {
		slog.Error("create car", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Location", "/api/cars/"+strconv.FormatInt(car.ID, 10))
	writeJSON(w, http.StatusCreated, toCarDTO(car))
}

// HandleUpdate overwrites an existing car from the request body.
func (h *CarHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req carRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cars.Update(r.Context(), id, req.Company, req.Model); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "car not found")
			return
		}
		slog.Error("update car", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a car. Referencing users lose the association but
// survive; when that is about to happen an advisory note is logged.
func (h *CarHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if referenced, err := h.cars.HasUsers(r.Context(), id); err == nil && referenced {
		slog.Info("deleting car still referenced by users", "id", id)
	}

	if err := h.cars.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "car not found")
			return
		}
		slog.Error("delete car", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
