// Package controller contains HTTP middlewares and helpers shared by the API server.
//
// Middlewares, outermost first as the server installs them:
//   - WithLogger: request ID, request-scoped logger and the access log line.
//   - WithMetrics: request latency histogram by route.
//   - WithCORS: CORS headers for the configured origins and OPTIONS preflight.
//   - WithSecurityHeaders: nosniff, frame denial and referrer policy.
//   - WithTimeout: bounds the request context.
//
// Helpers: WriteJSON and WriteError for response bodies, GetClientIP and PprofMux.
package controller
