// package server contains the router, middleware and response helpers shared by the Fyyur site and the Trivia API
package server

import (
	"net/http"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, panic recovery, CORS and transactions.
type Middleware func(http.Handler) http.Handler

// Route binds a method and path pattern to a handler.
//
// Paths use [http.ServeMux] patterns, so "/venues/{id}" exposes the "id" path value.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Pattern returns the [http.ServeMux] pattern for the route.
func (r Route) Pattern() string {
	if r.Method == "" {
		return r.Path
	}
	return r.Method + " " + r.Path
}

// Handler defines the interface for a group of HTTP endpoints.
// Implementations encapsulate their own route table.
type Handler interface {
	Routes() []Route // Routes returns the routes this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers every route of a Handler
	NotFound(handler http.Handler)                    // NotFound registers the handler for unmatched requests
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}
