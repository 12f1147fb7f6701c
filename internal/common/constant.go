// Package common contains shared constants and sentinel errors used across
// ContactKeeper components.
package common

// AuthTokenHeaderName is the HTTP header carrying the signed session token
// on requests to protected routes.
const AuthTokenHeaderName = "x-auth-token"

// DefaultContactType is stored when a contact is created without a type.
const DefaultContactType = "personal"
