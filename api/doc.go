// Package api provides the HTTP API layer for the Link Preview application.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Router construction and middleware assembly
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	POST /preview   {"url": "..."}    -> {"thumbnailUrl": "..."|null}
//	POST /previews  {"urls": [...]}   -> {"results": [{"url": ..., "thumbnailUrl": ...}]}
//	GET  /health                      -> {"status": "ok"}
//
// # Error Handling
//
// Only input validation produces a hard failure, as a 400 with a short
// message:
//
//	{"error": "URL is required"}
//	{"error": "Invalid URL"}
//
// Every fetch, parse or extraction failure on a well-formed request is
// returned as a 200 with a null thumbnailUrl. The calling UI treats null
// as "offer a manual upload" and must never see a hard error because a
// third-party server behaved badly.
//
// # Middleware
//
// The router wires, outermost first:
// - CORS handling (rs/cors)
// - Request logging with unique request IDs
// - Per-IP rate limiting
package api
