// Package http implements the REST surface of the vault server.
//
// Routes:
//
//	POST /api/register   create an account
//	POST /api/login      exchange credentials for a bearer token
//	GET  /api/accounts   return the stored encrypted vault (or null)
//	POST /api/accounts   replace the stored encrypted vault
//	GET  /api/version    server version
//	GET  /health         storage liveness
//
// Request tracing, access logging, CORS, security headers, compression,
// body size limits, timeouts, rate limiting and bearer authentication are
// handled here before requests reach the service layer. The server treats
// the vault as an opaque string and never inspects it.
package http
