package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/r-huijts/LibreChat/modelspec"
	"github.com/r-huijts/LibreChat/store"
)

type Server struct {
	router     *gin.Engine
	routesOnce sync.Once

	mongoStore store.MongoStore
	specs      *modelspec.Registry

	jwtSecret []byte
	traceMode bool
}

func NewServer(mongoStore store.MongoStore, specs *modelspec.Registry, jwtSecret []byte, traceMode bool) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	return &Server{
		router:     r,
		mongoStore: mongoStore,
		specs:      specs,
		jwtSecret:  jwtSecret,
		traceMode:  traceMode,
	}
}

// Run attaches all routes and starts serving.
func (s *Server) Run(addr string) error {
	s.setupRouter()
	return s.router.Run(addr)
}

// Router exposes the configured engine for tests.
func (s *Server) Router() *gin.Engine {
	s.setupRouter()
	return s.router
}

func (s *Server) setupRouter() {
	s.routesOnce.Do(s.registerRoutes)
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.healthz)

	api := s.router.Group("/api/v1")
	api.Use(s.DumpRequest)
	api.Use(s.authenticate)
	api.Use(s.recognizeAccount)
	{
		api.GET("/user", s.currentUser)

		api.GET("/consents", s.listConsents)
		api.POST("/consents", s.acceptConsent)
		api.DELETE("/consents/:modelName", s.revokeConsent)

		admin := api.Group("/consents/model")
		admin.Use(s.requireAdmin)
		admin.GET("/:modelName", s.listModelConsents)
	}
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
