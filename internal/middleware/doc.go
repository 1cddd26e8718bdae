// Package middleware provides HTTP middleware for the Gambit API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT token validation and user extraction
//   - RateLimit: Request rate limiting per user/IP
//   - Idempotency: Idempotent request handling for POST and PATCH
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	handler = middleware.Chain(handler, middleware.Auth(tokenService))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Rate Limiting
//
// Rate limiting protects against abuse:
//
//	handler = middleware.Chain(handler, middleware.RateLimit(limiter))
//
// Limits apply per authenticated user, falling back to remote address.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
