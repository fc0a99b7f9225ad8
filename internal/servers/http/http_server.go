package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"socketBoard/configs"
	"socketBoard/internal/handlers"
	"socketBoard/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx                context.Context
	config             *configs.Config
	restHandler        *handlers.RestHandler
	socketBoardHandler *handlers.SocketBoardHandler
	router             *gin.Engine
	log                *logger.Logger
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketBoardHandler *handlers.SocketBoardHandler,
	log *logger.Logger,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:                ctx,
			config:             config,
			restHandler:        restHandler,
			socketBoardHandler: socketBoardHandler,
			log:                log,
		}
	})
	return httpServer
}

// NewRouter builds the gin engine with the full HTTP and realtime surface.
// Kept separate from the server lifecycle so tests can drive it directly.
func NewRouter(restHandler *handlers.RestHandler, socketBoardHandler *handlers.SocketBoardHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", restHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/register", restHandler.Register)
		api.POST("/login", restHandler.Login)
		api.GET("/drawings", restHandler.GetAllDrawings)
		api.GET("/drawings/:id", restHandler.GetDrawing)
		api.GET("/user/:userId/drawings", restHandler.GetUserDrawings)

		authorized := api.Group("", restHandler.MustAuthenticateMiddleware())
		{
			authorized.POST("/drawings", restHandler.CreateDrawing)
			authorized.DELETE("/drawings/:id", restHandler.DeleteDrawing)
			authorized.DELETE("/user/:userId", restHandler.DeleteUserDrawings)
			authorized.POST("/drawings/:id/export", restHandler.ExportDrawing)
		}
	}

	router.GET("/ws", socketBoardHandler.HandleSocketBoardRoute)

	return router
}

func (hs *HttpServer) Run() {
	hs.router = NewRouter(hs.restHandler, hs.socketBoardHandler)
	server := hs.startServer()
	hs.waitForShutdown(server)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf("%s:%d",
		hs.config.Viper.GetString("server.host"),
		hs.config.Viper.GetInt("server.port"),
	)
	server := &http.Server{
		Addr:              addr,
		Handler:           hs.router,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		hs.log.Infow("HTTP server started", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			hs.log.Fatalw("failed to start server", "err", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	hs.log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(hs.ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		hs.log.Fatalw("server forced to shutdown", "err", err)
	}

	hs.socketBoardHandler.Shutdown()
	hs.log.Infow("server exiting")
}
