// Package http implements the HTTP transport layer of the booking API.
//
// It exposes route wiring, request handlers, and middleware used by the
// REST API. Authentication, request tracing, and access logging are
// handled in this package; handlers decode payloads, read the
// authenticated principal, and delegate to the service layer, passing
// the principal explicitly on every call.
package http
