// Package server is the HTTP boundary: a Gin engine with the standard
// middleware stack, the account route handlers, and the response
// envelopes. Handlers translate between JSON requests and the auth
// service; RespondWithError maps the error taxonomy onto status codes so
// no handler writes a status by hand.
package server
