// Copyright (c) 2026 Folium. All rights reserved.

// Package sec provides token verification for the authenticated owner surface.
//
// # Architecture
//
// Folium does not issue credentials. Identity lives with an external provider
// that signs RS256 access tokens; this package only verifies signatures and
// extracts the owner id every content operation is scoped to.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside an access token.
//
// # Why custom claims?
//
// By embedding the OwnerID directly inside the JWT, [middleware.Authenticate]
// can reconstruct the active owner context WITHOUT querying the database on
// every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// OwnerID is the opaque, already-verified identity all content is scoped to.
	OwnerID string `json:"uid"`
}

// TokenVerifier validates JWT access tokens using an RS256 public key.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenVerifier creates a new TokenVerifier.
// It reads the RSA public key from the provided filesystem path.
func NewTokenVerifier(publicKeyPath, issuer string) (*TokenVerifier, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenVerifier{
		publicKey: publicKey,
		issuer:    issuer,
	}, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (verifier *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return verifier.publicKey, nil
	}, jwt.WithIssuer(verifier.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	if claims.OwnerID == "" {
		return nil, fmt.Errorf("sec: token missing owner id")
	}

	return claims, nil
}
