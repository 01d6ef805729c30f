package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a unique id to every request and logs the
// request outcome. The id is echoed back in the response header and
// included in every log line written for the request, so a 500
// response can be matched to its server-side error.
func RequestID(logger *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
		} else {
			entry.Info("request completed")
		}
	}
}

// GetRequestIDFromContext returns the request id set by RequestID.
func GetRequestIDFromContext(c *gin.Context) string {
	requestID, exists := c.Get("requestID")
	if !exists {
		return ""
	}
	id, _ := requestID.(string)
	return id
}
