package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error as the JSON error
// envelope, unless a response was already written. Errors that are not
// *AppError values are reported as internal errors without their details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(requestIDKey),
			)
		}
		abortWithError(c, appErr)
	}
}
