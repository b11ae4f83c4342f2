// Package http implements the REST transport of the my-gram server.
//
// It exposes route wiring, request handlers and middleware. Tracing, access
// logging, compression, CORS, request timeouts and token authentication are
// handled in this package before requests are delegated to the service
// layer. Service errors are mapped here onto status codes and written as a
// {"code", "message"} JSON envelope.
package http
