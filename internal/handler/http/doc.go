// Package http implements the HTTP transport layer of the blog API.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, CORS and request timeouts are handled in
// this package before requests are delegated to the service layer.
package http
