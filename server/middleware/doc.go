// Package middleware provides HTTP middleware for the gateway server.
// Pre-routing concerns (request logging, path normalization, CORS, body-size
// limits) are net/http middleware composed with Chain around the server's
// mux; handlers that need Gin's context (recovery, request IDs, auth) are
// Gin-native.
package middleware
