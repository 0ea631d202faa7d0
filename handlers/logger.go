package handlers

import (
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns a request-scoped logger when middleware has attached one,
// otherwise the service-wide logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
