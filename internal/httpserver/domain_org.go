package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	orgHTTP "missionmind/internal/org/delivery/http"
	orgRepo "missionmind/internal/org/repository/sqlite"
	orgUC "missionmind/internal/org/usecase"
)

// setupOrgDomain initializes the org domain and registers its routes.
func (srv HTTPServer) setupOrgDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := orgRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := orgUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := orgHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/org-units
	orgHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Org domain registered")
	return nil
}
