// Package echo provides adapters for using win-status with the Echo framework.
package echo

import (
	"net/http"

	echofw "github.com/labstack/echo/v4"

	winstatus "github.com/blackwell-systems/win-status"
)

// RequestID adapts win-status request ID middleware to Echo's
// middleware interface.
//
// This generates or propagates request IDs and makes them available via
// winstatus.RequestIDFromRequest(c.Request()).
//
// Example:
//
//	e := echo.New()
//	e.Use(RequestID)
//	e.GET("/objects/:name", func(c echo.Context) error {
//	    id := winstatus.RequestIDFromRequest(c.Request())
//	    // ...
//	    return nil
//	})
func RequestID(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		// Wrap with the request ID middleware
		handler := winstatus.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with the tagged request
			c.SetRequest(r)
			_ = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	}
}

// Write sends a structured status envelope using the win-status format.
//
// This is a convenience wrapper that extracts c.Response().Writer and
// c.Request() to call winstatus.Write.
//
// Example:
//
//	e.GET("/objects/:name", func(c echo.Context) error {
//	    if err := winstatus.CheckNT(lookup(c.Param("name"))); err != nil {
//	        return Write(c, err)
//	    }
//	    // ...
//	    return nil
//	})
func Write(c echofw.Context, err error) error {
	winstatus.Write(c.Response().Writer, c.Request(), err)
	return nil
}
