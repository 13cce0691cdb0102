// Package http implements the HTTP transport layer of the application.
//
// It exposes the login, registration and identity routes of the auth API,
// plus the version and metrics endpoints. Request tracing, access logging,
// per-client rate limiting and bearer token authentication are handled here
// before requests are delegated to the service layer.
package http
