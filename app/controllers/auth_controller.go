package controllers

import (
	"encoding/json"
	"net/http"

	"techwritehub/app/dto"
	jwtutil "techwritehub/app/jwt"
	"techwritehub/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.Register(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Identifier == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing credentials"})
		return
	}
	u, err := c.Users.Verify(req.Identifier, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token})
}
