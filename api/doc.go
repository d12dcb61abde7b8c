// Package api implements the gateway's public HTTP endpoints: the
// transcription endpoint and the root status page.
package api
