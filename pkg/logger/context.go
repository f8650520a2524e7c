package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contextKey = "logger"

// Inject stores a request scoped logger in the gin context.
func Inject(c *gin.Context, l *zap.Logger) {
	c.Set(contextKey, l)
}

// FromContext returns the request scoped logger, or the global logger when
// none was injected.
func FromContext(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}
