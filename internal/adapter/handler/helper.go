package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/brainstorm-assistant/errors"
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/dto/brainstorm"
)

// getRequestID tries to read X-Request-ID from the request, then from the
// response header set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a {success: true, message} body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, message string) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, brainstorm.ActionResponse{
		Success: true,
		Message: message,
	})
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Stringer("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		return c.JSON(appErr.HTTPCode, brainstorm.ActionResponse{
			Success: false,
			Message: appErr.Cause(),
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, brainstorm.ActionResponse{
		Success: false,
		Message: errors.ErrInternal(err).Cause(),
	})
}
