package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/context"
)

const (
	// HeaderUser carries the display name of the operator, when the client
	// supplies one. The service has no authentication; the value is used for
	// request logs and the record_entered_by convenience default only.
	HeaderUser = "X-User"
)

func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			user := req.Header.Get(HeaderUser)

			ctx := req.Context()
			ctx = context.SetRequestID(ctx, requestID)
			ctx = context.SetMethod(ctx, req.Method)
			ctx = context.SetRoute(ctx, req.URL.Path)
			ctx = context.SetRemoteIP(ctx, c.RealIP())
			ctx = context.SetReferer(ctx, req.Referer())
			ctx = context.SetUser(ctx, user)

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
