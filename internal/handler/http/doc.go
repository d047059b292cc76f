// Package http implements the HTTP transport layer of resume-gate.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, request
// timeouts and admin authentication are handled in this package before
// requests are delegated to the service layer.
package http
