// Package validation wraps go-playground/validator with friendlier error
// reporting for configuration and request structs.
package validation
