// Package server assembles the HTTP router from the entity modules.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bookingapi/internal/metrics"
	"bookingapi/internal/middleware"
	"bookingapi/internal/modules/amenity"
	"bookingapi/internal/modules/auth"
	"bookingapi/internal/modules/booking"
	"bookingapi/internal/modules/host"
	"bookingapi/internal/modules/property"
	"bookingapi/internal/modules/review"
	"bookingapi/internal/modules/user"
	jwtsvc "bookingapi/internal/pkg/jwt"
	"bookingapi/internal/repository"
)

type Deps struct {
	DB          *gorm.DB
	JWT         *jwtsvc.Service
	Reporter    middleware.Reporter
	Log         *logrus.Logger
	CORSOrigins []string
}

type routeRegistrar interface {
	RegisterRoutes(public, protected *gin.RouterGroup)
}

// NewRouter wires every repository to the one shared connection and mounts
// the modules under /api. Mutating routes sit behind JWTAuth.
func NewRouter(d Deps) *gin.Engine {
	userRepo := repository.NewUserRepository(d.DB)
	hostRepo := repository.NewHostRepository(d.DB)
	propertyRepo := repository.NewPropertyRepository(d.DB)
	amenityRepo := repository.NewAmenityRepository(d.DB)
	bookingRepo := repository.NewBookingRepository(d.DB)
	reviewRepo := repository.NewReviewRepository(d.DB)

	authHandler := auth.NewHandler(auth.NewService(userRepo, d.JWT))
	modules := []routeRegistrar{
		user.NewHandler(user.NewService(userRepo)),
		host.NewHandler(host.NewService(hostRepo)),
		property.NewHandler(property.NewService(propertyRepo)),
		amenity.NewHandler(amenity.NewService(amenityRepo)),
		booking.NewHandler(booking.NewService(bookingRepo)),
		review.NewHandler(review.NewService(reviewRepo)),
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(d.Log),
		metrics.Middleware(),
		middleware.CORS(d.CORSOrigins),
		middleware.Recovery(d.Reporter, d.Log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(d.JWT))

	authHandler.RegisterRoutes(api)
	for _, m := range modules {
		m.RegisterRoutes(api, protected)
	}

	return r
}
