package api

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Domenick1991/hotelbooking/config"
	_ "github.com/Domenick1991/hotelbooking/docs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Rooms    *RoomHandler
	Users    *UserHandler
	Bookings *BookingHandler
	Invoices *InvoiceHandler
}

// NewRouter wires the REST handlers behind CORS and request logging.
func NewRouter(cfg config.HTTPConfig, logger *slog.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger), cors.New(corsConfig(cfg.CORSOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.Rooms.Register(router.Group("/rooms"))
	h.Users.Register(router.Group("/users"))
	h.Bookings.Register(router.Group("/bookings"))
	h.Invoices.Register(router.Group("/invoices"))

	if cfg.Swagger {
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}
	return cfg
}
