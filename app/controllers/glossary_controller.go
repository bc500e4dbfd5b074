package controllers

import (
	"encoding/json"
	"net/http"

	"techwritehub/app/middleware"
	"techwritehub/app/services"
)

type GlossaryController struct{ Entries *services.GlossaryService }

func NewGlossaryController(entries *services.GlossaryService) *GlossaryController {
	return &GlossaryController{Entries: entries}
}

type glossaryCreateReq struct {
	Term       string   `json:"term"`
	Definition string   `json:"definition"`
	Tags       []string `json:"tags"`
}

type glossaryUpdateReq struct {
	Term       *string   `json:"term"`
	Definition *string   `json:"definition"`
	Tags       *[]string `json:"tags"`
}

func (c *GlossaryController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req glossaryCreateReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	g, err := c.Entries.Create(claims.UserID, req.Term, req.Definition, req.Tags)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (c *GlossaryController) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	list, err := c.Entries.List(claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (c *GlossaryController) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, ok := recordID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	g, err := c.Entries.Get(claims.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (c *GlossaryController) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, ok := recordID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	var req glossaryUpdateReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	g, err := c.Entries.Update(claims.UserID, id, services.GlossaryUpdate{Term: req.Term, Definition: req.Definition, Tags: req.Tags})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (c *GlossaryController) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, ok := recordID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	if err := c.Entries.Delete(claims.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
