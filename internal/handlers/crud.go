package handlers

import (
	"context"
	"net/http"
)

// resource names a REST resource in response messages and bodies.
type resource struct {
	// Title is used in messages, e.g. "Card added successfully".
	Title string
	// Key holds the payload next to the message, e.g. {"card": {...}}.
	Key string
}

func listHandler[T any](list func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler[T any](get func(ctx context.Context, id int64) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		item, err := get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func createHandler[Req, T any](res resource, create func(ctx context.Context, req Req) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if !decodeRequest(w, r, &req) {
			return
		}

		item, err := create(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": res.Title + " added successfully",
			res.Key:   item,
		})
	}
}

// updateHandler serves both PUT and PATCH. label names the updated record in
// the message; an empty label gives the plain "<Title> updated successfully".
func updateHandler[Req, T any](res resource, update func(ctx context.Context, id int64, req Req) (*T, error), label func(*T) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req Req
		if !decodeRequest(w, r, &req) {
			return
		}

		item, err := update(r.Context(), id, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		msg := res.Title + " updated successfully"
		if name := label(item); name != "" {
			msg = res.Title + " '" + name + "' updated successfully"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": msg,
			res.Key:   item,
		})
	}
}

func deleteHandler(res resource, del func(ctx context.Context, id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := del(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: res.Title + " deleted successfully"})
	}
}
