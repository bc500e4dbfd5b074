package controllers

import (
	"encoding/json"
	"net/http"

	"techwritehub/app/middleware"
	"techwritehub/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type passwordChangeReq struct {
	Password string `json:"password"`
}

func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	u, err := c.Users.Get(claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req passwordChangeReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.UpdatePassword(claims.UserID, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *UserController) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var progress map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&progress); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid progress payload"})
		return
	}
	u, err := c.Users.UpdateProgress(claims.UserID, progress)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if err := c.Users.Delete(claims.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
