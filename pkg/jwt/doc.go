// Package jwt provides JSON Web Token utilities for the Gambit API.
//
// The jwt package signs and validates RS256 access tokens carrying the
// authenticated user's identity. Keys are RSA PEM files on disk; tokens
// are compact JWS (header.claims.signature, base64url without padding).
//
// # Signing
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    Issuer:         "gambit-api",
//	    ExpirationMins: 15,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject: user.ID,
//	    UserID:  user.ID,
//	    Email:   user.Email,
//	    Role:    string(user.Role),
//	})
//
// # Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // invalid signature, expired, or wrong issuer
//	}
//	userID := claims.UserID
//
// Validation checks the RSA signature, the exp/nbf time claims, and that
// the issuer matches the service's configured issuer. A service built with
// only a public key path can validate but not sign, which suits read-only
// deployments that never mint tokens.
//
// # Key Management
//
// GenerateKeyPair writes a fresh 2048-bit RSA pair as PEM files; the
// companion CLI's keygen command wraps it for operators.
package jwt
