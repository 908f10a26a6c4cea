package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edupack/scorm-server/internal/repository"
	"github.com/edupack/scorm-server/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// todoID parses the {id} URL param. A non-numeric id behaves like an unknown
// one: not found, never a mutation.
func todoID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	todo, err := h.svc.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	// The title key must be present in the payload, but an explicit null is
	// still "present" and creates a todo with an empty title. A raw map keeps
	// that distinction, which pointer fields cannot.
	var raw map[string]json.RawMessage
	if err := readJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	titleRaw, ok := raw["title"]
	if !ok {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	var title string
	json.Unmarshal(titleRaw, &title)
	var completed *bool
	if c, ok := raw["completed"]; ok {
		var b bool
		if json.Unmarshal(c, &b) == nil {
			completed = &b
		}
	}
	todo, err := h.svc.Create(&title, completed)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	// Existence is checked before body validation: an unknown id is 404 even
	// when the body is also missing.
	if _, err := h.svc.Get(id); err != nil {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	var req struct {
		Title     *string `json:"title"`
		Completed *bool   `json:"completed"`
	}
	// An absent or unreadable body is a client error; a body with missing
	// fields is a valid partial update.
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	todo, err := h.svc.Update(id, req.Title, req.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Todo not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"result": true})
}
