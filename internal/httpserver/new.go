package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "samaritans-api/internal/auth/delivery/http"
	itemUC "samaritans-api/internal/item/usecase"
	"samaritans-api/internal/sweeper"
	"samaritans-api/pkg/log"
	"samaritans-api/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db         *sql.DB
	jwtManager scope.Manager
	cookie     authHTTP.CookieConfig
	itemConfig itemUC.Config

	// built during mapHandlers, drives the background sweeper
	sweeperStore sweeper.Store
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB        *sql.DB
	JWTSecret string
	Cookie    authHTTP.CookieConfig
	Item      itemUC.Config
}

// New creates a new HTTPServer instance with all domains wired.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		jwtManager:  scope.NewManager(cfg.JWTSecret),
		cookie:      cfg.Cookie,
		itemConfig:  cfg.Item,
	}

	if err := srv.validate(cfg); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate(cfg Config) error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}

// SweeperStore returns the expiry store for the background sweeper.
func (srv *HTTPServer) SweeperStore() sweeper.Store {
	return srv.sweeperStore
}
