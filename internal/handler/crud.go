package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eshop/internal/service"
)

// CrudService is the capability set a resource needs to expose create, list,
// fetch, update and delete endpoints. Absent entities are the zero value.
type CrudService[T comparable] interface {
	Create(ctx context.Context, entity T) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	DeleteByID(ctx context.Context, id string) error
}

// RegisterCrudRoutes mounts the standard resource routes under path.
func RegisterCrudRoutes[T comparable](r chi.Router, path string, svc CrudService[T]) {
	r.Route(path, func(r chi.Router) {
		r.Post("/", createHandler(svc))
		r.Get("/", listHandler(svc))
		r.Get("/{id}", getHandler(svc))
		r.Put("/{id}", updateHandler(svc))
		r.Delete("/{id}", deleteHandler(svc))
	})
}

func createHandler[T comparable](svc CrudService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity T
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), entity)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			slog.Error("create failed", "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func listHandler[T comparable](svc CrudService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := svc.FindAll(r.Context())
		if err != nil {
			slog.Error("list failed", "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if entities == nil {
			entities = []T{}
		}
		writeJSON(w, http.StatusOK, entities)
	}
}

func getHandler[T comparable](svc CrudService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var zero T
		entity, err := svc.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			slog.Error("get failed", "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if entity == zero {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, entity)
	}
}

func updateHandler[T comparable](svc CrudService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity T
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var zero T
		updated, err := svc.Update(r.Context(), entity)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			slog.Error("update failed", "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if updated == zero {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteHandler[T comparable](svc CrudService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
			slog.Error("delete failed", "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}
