// Package gin provides adapters for using win-status with the Gin framework.
package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	winstatus "github.com/blackwell-systems/win-status"
)

// RequestID wires win-status request ID middleware into Gin's
// middleware chain.
//
// This generates or propagates request IDs and makes them available via
// winstatus.RequestIDFromRequest(c.Request).
//
// Example:
//
//	r := gin.Default()
//	r.Use(RequestID())
//	r.GET("/objects/:name", func(c *gin.Context) {
//	    id := winstatus.RequestIDFromRequest(c.Request)
//	    // ...
//	})
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Wrap the remaining chain with the request ID middleware
		handler := winstatus.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with the tagged request
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Write sends a structured status envelope using the win-status format.
//
// This is a convenience wrapper that extracts c.Writer and c.Request
// to call winstatus.Write.
//
// Example:
//
//	r.GET("/objects/:name", func(c *gin.Context) {
//	    if err := winstatus.CheckNT(lookup(c.Param("name"))); err != nil {
//	        Write(c, err)
//	        return
//	    }
//	    // ...
//	})
func Write(c *gin.Context, err error) {
	winstatus.Write(c.Writer, c.Request, err)
}
