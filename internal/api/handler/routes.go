package handler

import (
	"net/http"

	"github.com/vfg2006/creative-health-api/infrastructure/repository"
	"github.com/vfg2006/creative-health-api/internal/api/handler/router"
	"github.com/vfg2006/creative-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-health-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func CreativeHealth(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/adAccount/:id/creative-health",
			Method:      http.MethodGet,
			Handler:     GetCreativeHealth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdAccounts(repo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
