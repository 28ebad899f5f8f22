// Package http implements the REST transport of the blog list service.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: panic recovery, trace ids, access logging, CORS, gzip,
// request timeouts and bearer token authentication. Every failure leaves
// through the error mapper as a {"error": "..."} JSON body.
package http
