package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/interviewai-team/interviewai-backend/errors"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/dto/common"
)

// getRequestID reads X-Request-ID from the request, falling back to the
// response header where the RequestID middleware stores generated IDs
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	rid := c.Request().Header.Get(echo.HeaderXRequestID)
	if rid == "" && c.Response() != nil {
		rid = c.Response().Header().Get(echo.HeaderXRequestID)
	}
	return rid
}

// HandleSuccess writes the success envelope with HTTP 200
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respondSuccess(logger, c, http.StatusOK, data)
}

// HandleCreated writes the success envelope with HTTP 201
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respondSuccess(logger, c, http.StatusCreated, data)
}

// HandleAccepted writes the success envelope with HTTP 202; used by ingest,
// where analysis continues in the background
func HandleAccepted(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respondSuccess(logger, c, http.StatusAccepted, data)
}

func respondSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(status, common.NewSuccessResponse(data))
}

// HandleError centralizes error handling and logging. AppErrors map to
// their HTTP code; anything else is an internal 500.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}
		return c.JSON(appErr.HTTPCode, common.NewErrorResponse(appErr.Code.String(), appErr.Message))
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError,
		common.NewErrorResponse(apperrors.ErrorCode_INTERNAL.String(), "Internal server error"))
}
