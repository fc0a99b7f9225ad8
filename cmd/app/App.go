package app

import (
	"context"
	"sync"

	"socketBoard/configs"
	"socketBoard/internal/handlers"
	"socketBoard/internal/logger"
	"socketBoard/internal/repositories"
	"socketBoard/internal/servers/database"
	"socketBoard/internal/servers/http"
	"socketBoard/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	ctx     context.Context
	configs *configs.Config
	redis   *redis.Client
	log     *logger.Logger
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.configs = configs.GetConfig()
	app.log = logger.Get(app.configs.Viper.GetString("log.level"))

	if app.configs.UsingInsecureSecret() {
		app.log.Warnw("JWT_SECRET is not set; using the insecure built-in fallback secret. " +
			"Set an explicit secret before exposing this server.")
	}

	app.initializeRedis()

	db := database.GetDB(app.configs, app.log)
	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	drawingRepo := repositories.NewDrawingRepository(db)
	drawingService := services.NewDrawingService(drawingRepo)

	var fileManagerService *services.FileManagerService
	if app.configs.Viper.GetBool("minio.enabled") {
		minioService, err := services.NewMinioService(app.configs, app.log)
		if err != nil {
			app.log.Fatalw("failed to initialize minio", "err", err)
		}
		fileManagerService = services.NewFileManagerService(minioService)
	} else {
		app.log.Infow("minio disabled; drawing export unavailable")
	}

	restHandler := handlers.NewRestHandler(
		authService,
		drawingService,
		fileManagerService,
		app.log,
	)
	socketBoardHandler := handlers.NewSocketBoardHandler(app.redis, app.ctx, app.log)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketBoardHandler,
		app.log,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}
