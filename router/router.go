package router

import (
	"net/http"

	"techwritehub/app/controllers"
	"techwritehub/app/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func New(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, userCtrl *controllers.UserController, tutorialCtrl *controllers.TutorialController, glossaryCtrl *controllers.GlossaryController, gate *middleware.Auth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	// public
	r.Get("/api/health", httpCtrl.Health)
	r.Post("/api/users/register", authCtrl.Register)
	r.Post("/api/users/login", authCtrl.Login)

	// everything below requires a resolved user identity
	r.Group(func(pr chi.Router) {
		pr.Use(gate.RequireAuth)

		pr.Get("/api/users/me", userCtrl.Me)
		pr.Put("/api/users/me/password", userCtrl.UpdatePassword)
		pr.Put("/api/users/me/progress", userCtrl.UpdateProgress)
		pr.Delete("/api/users/me", userCtrl.DeleteAccount)

		pr.Route("/api/tutorials", func(rr chi.Router) {
			rr.Post("/", tutorialCtrl.Create)
			rr.Get("/", tutorialCtrl.List)
			rr.Get("/{id}", tutorialCtrl.Get)
			rr.Put("/{id}", tutorialCtrl.Update)
			rr.Delete("/{id}", tutorialCtrl.Delete)
		})

		pr.Route("/api/glossary", func(rr chi.Router) {
			rr.Post("/", glossaryCtrl.Create)
			rr.Get("/", glossaryCtrl.List)
			rr.Get("/{id}", glossaryCtrl.Get)
			rr.Put("/{id}", glossaryCtrl.Update)
			rr.Delete("/{id}", glossaryCtrl.Delete)
		})
	})

	return r
}
