package router // package router defines how HTTP routes are registered for the API

import (
	"net/http" // method names
	"strings"  // strings normalizes log level names

	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's bundled middleware
	"github.com/labstack/gommon/log"                // echo logger levels
	"github.com/redis/go-redis/v9"                  // optional rate limiter backend

	"github.com/iliyamo/greeting-service/internal/config"     // service and rate limiter settings
	"github.com/iliyamo/greeting-service/internal/handler"    // route handlers
	"github.com/iliyamo/greeting-service/internal/middleware" // application middleware
)

// Use installs the middleware chain shared by every route.
func Use(e *echo.Echo) {
	e.Use(echomw.Recover())
}

// RegisterRoutes maps the public routes.  /api answers GET and HEAD; other
// methods get echo's 405 and unknown paths get its 404.  mw applies to /api
// only so liveness checks are never throttled.
func RegisterRoutes(e *echo.Echo, g *handler.GreetingHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.Match([]string{http.MethodGet, http.MethodHead}, "/api", g.Greet, mw...)
}

// New builds the Echo instance for the greeting service with the middleware
// chain and routes installed.  rdb may be nil, in which case the rate limiter
// is a pass-through.
func New(cfg config.Config, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(LogLevel(cfg.LogLevel))

	Use(e)
	RegisterRoutes(e, handler.NewGreetingHandler(cfg.Greeting), middleware.NewTokenBucket(cfg.RateLimit, rdb))
	return e
}

// LogLevel maps a LOG_LEVEL value onto a gommon level.  Unknown names fall
// back to INFO.
func LogLevel(name string) log.Lvl {
	switch strings.ToLower(name) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
