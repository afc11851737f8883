package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/sirupsen/logrus"
)

// respondError writes {"error": message, "code": CODE} with the status the code maps to.
// Unclassified errors become a 500 and their details stay in the log.
func respondError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	code := apperrors.GetCode(err)
	status := code.HTTPStatus()
	entry := logger.WithError(err).WithFields(logrus.Fields{
		"op":         op,
		"code":       code,
		"request_id": c.GetString(requestIDKey),
	})
	if status >= 500 {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": apperrors.Message(err, "internal server error"),
		"code":  code,
	})
}

func respondBindError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	respondError(c, logger, op, apperrors.Wrap(apperrors.CodeInvalidArgument, err, "invalid request: %v", err))
}

// pathID reads an integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidArgument("%s must be an integer, got %q", name, c.Param(name))
	}
	return id, nil
}
