package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the portal session identifier. The display-currency
// state is keyed by it; nothing else is.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "sessionID"

// SessionMiddleware reads the session id from the request header, minting a
// fresh one when absent, and echoes it back so the client can carry it
// forward.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			sid = uuid.New().String()
		}
		c.Set(sessionContextKey, sid)
		c.Header(SessionHeader, sid)
		c.Next()
	}
}

// SessionID returns the session identifier for the current request.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
