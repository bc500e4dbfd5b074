package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"techwritehub/app/middleware"
	"techwritehub/app/services"

	"github.com/go-chi/chi/v5"
)

type TutorialController struct{ Tutorials *services.TutorialService }

func NewTutorialController(tutorials *services.TutorialService) *TutorialController {
	return &TutorialController{Tutorials: tutorials}
}

type tutorialCreateReq struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type tutorialUpdateReq struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

func recordID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (c *TutorialController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req tutorialCreateReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	t, err := c.Tutorials.Create(claims.UserID, req.Title, req.Content, req.Completed)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (c *TutorialController) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	list, err := c.Tutorials.List(claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (c *TutorialController) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, ok := recordID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	t, err := c.Tutorials.Get(claims.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (c *TutorialController) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, ok := recordID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	var req tutorialUpdateReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	t, err := c.Tutorials.Update(claims.UserID, id, services.TutorialUpdate{Title: req.Title, Content: req.Content, Completed: req.Completed})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (c *TutorialController) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, ok := recordID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	if err := c.Tutorials.Delete(claims.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
