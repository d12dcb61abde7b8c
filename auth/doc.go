// Package auth provides JWT bearer-token validation for the gateway's
// optional authentication middleware.
package auth
