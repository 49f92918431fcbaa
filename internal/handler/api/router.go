package api

import (
	xhttp "PanganPulse/pkg/http"

	"github.com/labstack/echo/v4"
)

// Router combines the REST and websocket handlers into one registration.
type Router struct {
	handlers []xhttp.Handler
}

func NewRouter(handlers ...xhttp.Handler) *Router {
	return &Router{handlers: handlers}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}
