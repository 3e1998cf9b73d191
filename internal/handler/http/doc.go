// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, and
// CORS are handled in this package before requests are delegated to the
// service layer. Service and store errors are translated to status codes by
// a single sentinel-to-status map.
package http
