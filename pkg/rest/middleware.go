package rest

import "github.com/gin-gonic/gin"

// Middleware binds a gin handler to a route group. Group "*" applies the
// handler to the whole engine.
type Middleware struct {
	Handler gin.HandlerFunc
	Group   string
}

func NewMiddleware(group string, handler gin.HandlerFunc) Middleware {
	return Middleware{
		Group:   group,
		Handler: handler,
	}
}
