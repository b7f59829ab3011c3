package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "samaritans-api/internal/auth/delivery/http"
	authRepo "samaritans-api/internal/auth/repository/sqlite"
	authUC "samaritans-api/internal/auth/usecase"
	itemHTTP "samaritans-api/internal/item/delivery/http"
	itemRepo "samaritans-api/internal/item/repository/sqlite"
	itemUC "samaritans-api/internal/item/usecase"
	"samaritans-api/internal/middleware"
)

// setupAuthDomain initializes accounts and sessions and registers their routes.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.db, srv.l)
	uc := authUC.New(repo, srv.jwtManager, srv.l)
	h := authHTTP.New(srv.l, uc, srv.cookie)

	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

// setupItemDomain initializes listings and registers their routes. The item
// use case doubles as the sweeper store so background expiry shares the same
// view invalidation.
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := itemRepo.New(srv.db, srv.l)
	users := authRepo.New(srv.db, srv.l)
	uc := itemUC.New(repo, users, srv.itemConfig, srv.l)
	h := itemHTTP.New(srv.l, uc)

	itemHTTP.RegisterRoutes(api, h, mw)
	srv.sweeperStore = uc

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
