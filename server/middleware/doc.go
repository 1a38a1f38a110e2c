// Package middleware holds the Gin middleware stack: recovery, request
// IDs, request logging, CORS, body-size limits, and the two-stage route
// guard (Authenticate, then RequireRoles).
package middleware
