package handler

import (
	"net/http"

	"github.com/msomdec/autoshop/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, cars *service.CarService) {
	mux.HandleFunc("GET /healthz", HandleHealthz)

	carHandler := NewCarHandler(cars)
	mux.HandleFunc("GET /api/cars", carHandler.HandleList)
	mux.HandleFunc("POST /api/cars", carHandler.HandleCreate)
	mux.HandleFunc("GET /api/cars/{id}", carHandler.HandleGet)
	mux.HandleFunc("PUT /api/cars/{id}", carHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/cars/{id}", carHandler.HandleDelete)

	userHandler := NewUserHandler(users)
	mux.HandleFunc("GET /api/users", userHandler.HandleList)
	mux.HandleFunc("POST /api/users", userHandler.HandleCreate)
	mux.HandleFunc("GET /api/users/{id}", userHandler.HandleGet)
	mux.HandleFunc("PUT /api/users/{id}", userHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/users/{id}", userHandler.HandleDelete)
}
