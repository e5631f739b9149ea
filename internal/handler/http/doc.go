// Package http implements the HTTP transport layer of the master-key
// subsystem.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API. Cross-cutting concerns such as bearer-token authentication, request
// tracing, access logging, and client fingerprinting are handled in this
// package before requests are delegated to the service layer.
package http
