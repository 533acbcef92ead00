// Package server provides HTTP routing, middleware, and response helpers for the Fyyur site and the Trivia API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method and wildcard patterns ("GET /venues/{id}").
// A [Router.NotFound] handler catches every request no route matches.
//
// # Handler Interface
//
// Handlers implement the [Handler] interface, returning their own [Route] table so that route
// definitions stay next to the code that serves them.
//
// # Middleware
//
// The standard stack, outermost first:
//   - [Recover] turns panics into a rendered 500
//   - [RequestLogger] assigns a request ID and logs method, path, status and duration
//   - [CORS] (Trivia API only) opens the API to browser clients
//   - [Transactional] wraps the request in one database transaction
//
// # Transactions
//
// [Transactional] buffers the response so the commit decision can depend on the status the
// handler chose. Handlers fetch the bound store with [repositories.StoreFrom].
//
// # Errors
//
// [Status] maps the shared sentinel errors onto HTTP codes and [WriteError] renders the JSON
// envelope {"success": false, "error": code, "message": text}.
package server
