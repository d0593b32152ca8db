package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/rule-hunter/internal/apperr"
	mw "github.com/DjordjeVuckovic/rule-hunter/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/rule-hunter/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	skipLogPaths  []string

	ctx  context.Context
	stop context.CancelFunc
}

// New creates a server whose context is canceled on SIGINT or SIGTERM.
func New(cfg *Config, healthChecker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: healthChecker,
		ctx:           ctx,
		stop:          stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return mw.HasAnyPrefix(c.Request().URL.Path, s.skipLogPaths)
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

type healthResponse struct {
	Status string `json:"status"`
}

// SetupHealthChecks answers 200 while the health checker is healthy and 503
// otherwise. Requests to path are not logged.
func (s *Server) SetupHealthChecks(path string) *Server {
	s.skipLogPaths = append(s.skipLogPaths, path)
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unhealthy"})
		}
		return c.JSON(http.StatusOK, healthResponse{Status: "healthy"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// SetupMetrics exposes the default Prometheus registry. Requests to path are
// not logged.
func (s *Server) SetupMetrics(path string) *Server {
	s.skipLogPaths = append(s.skipLogPaths, path)
	s.Echo.GET(path, echo.WrapHandler(promhttp.Handler()))
	return s
}

// Context is canceled when the process receives a shutdown signal.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Start serves until the server fails or a shutdown signal arrives, then
// drains in-flight requests.
func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "http2", s.cfg.UseHttp2)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", GracefulShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}
