package controllers

import "net/http"

type HTTPController struct{}

func NewHTTPController() *HTTPController { return &HTTPController{} }

func (c *HTTPController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
