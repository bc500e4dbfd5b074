package initialize

import (
	"fmt"
	"net/http"

	"techwritehub/app/controllers"
	"techwritehub/app/db"
	jwtutil "techwritehub/app/jwt"
	"techwritehub/app/middleware"
	"techwritehub/app/models"
	"techwritehub/app/repo"
	"techwritehub/app/services"
	"techwritehub/config"
	"techwritehub/global"
	"techwritehub/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Router    http.Handler
	Users     *services.UserService
	Tutorials *services.TutorialService
	Glossary  *services.GlossaryService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Tutorial{}, &models.Glossary{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	tutorialRepo := repo.NewTutorialRepository(gdb)
	glossaryRepo := repo.NewGlossaryRepository(gdb)
	userSvc := services.NewUserService(userRepo, cfg.BcryptCost)
	tutorialSvc := services.NewTutorialService(tutorialRepo)
	glossarySvc := services.NewGlossaryService(glossaryRepo)

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	gate := &middleware.Auth{Signer: signer, Users: userSvc}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	userCtrl := controllers.NewUserController(userSvc)
	tutorialCtrl := controllers.NewTutorialController(tutorialSvc)
	glossaryCtrl := controllers.NewGlossaryController(glossarySvc)

	// Router, wrapped outside-in with logging, rate limiting, CORS and headers
	h := router.New(httpCtrl, authCtrl, userCtrl, tutorialCtrl, glossaryCtrl, gate)
	rl := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	h = rl.Handler(h)
	h = middleware.CORS(h)
	h = middleware.SecureHeaders(h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc, Tutorials: tutorialSvc, Glossary: glossarySvc}, nil
}
