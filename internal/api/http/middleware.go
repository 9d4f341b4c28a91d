package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/observability"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares: request timeout, request
// logging, error handling and CORS. The request logger wraps the error
// middleware so it observes the status the error mapping actually wrote.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg config.Config) {
	if timeout := cfg.App.RequestTimeout(); timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowCredentials: cfg.HTTP.CORSOrigin != "*",
		AllowHeaders:     "Origin, Content-Type, Accept",
	}))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware maps every failure onto the uniform response
// envelope: authentication failures are a bare `{ok:false}` with 401 and no
// cause, everything else carries `{ok:false, message}`.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				if domainErr.HTTPStatus == http.StatusUnauthorized {
					_ = c.JSON(fiber.Map{"ok": false})
				} else {
					_ = c.JSON(fiber.Map{"ok": false, "message": domainErr.Message})
				}
				err = nil
			}
		}()
		return c.Next()
	}
}

func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apperrors.NewDomainError("HTTP_ERROR", fiberErr.Message, fiberErr.Code)
	}
	return apperrors.ToDomainError(err)
}
