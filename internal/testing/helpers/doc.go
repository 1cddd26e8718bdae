// Package helpers provides test utility functions for the Gambit API.
//
// The helpers package contains common test utilities for building
// requests, decoding responses, and asserting on API behavior.
//
// # Request Helpers
//
// Build authenticated HTTP requests:
//
//	req := helpers.NewRequest(t, "POST", "/v1/registries").
//		WithBody(map[string]string{"name": "Test Registry"}).
//		WithAuth(jwtHelper, user).
//		Build()
//
// # JWT Helpers
//
// Generate test JWT tokens with in-memory keys:
//
//	jwtHelper := helpers.NewJWTHelper(t)
//	token := jwtHelper.GenerateToken(user)
//	expired := jwtHelper.GenerateExpiredToken(user)
//
// # Assertion Helpers
//
// Common response and database assertions:
//
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//	helpers.AssertProblemDetails(t, resp, 404, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, resp, "attack")
//	helpers.AssertRecordExists(t, db, "card", card.ID)
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//	flag := helpers.BoolPtr(true)
package helpers
