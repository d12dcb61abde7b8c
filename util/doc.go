// Package util holds small shared helpers with no domain dependencies.
package util
