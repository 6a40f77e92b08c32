// Package utils provides shared constants for handlers and middleware
package utils

// ContextKeyCreds is the key used to store MinIO credentials in the echo context
const ContextKeyCreds = "creds"

// PublicPaths are served without a bearer token
var PublicPaths = map[string]bool{
	"/health": true,
}
