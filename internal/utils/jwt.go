package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the raw token from an Authorization header value
// of the form "Bearer <token>". Returns an error if the header does not have
// exactly two parts or the token part is empty.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// SubjectFromJWT extracts the "sub" claim from a JWT without verifying its
// signature. The client never holds the server's signing key; the subject is
// used only to scope the local cache to the current identity, not to grant
// access, so unverified parsing is sufficient here.
//
// Returns an error if the token cannot be parsed or carries no subject.
func SubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}

	sub = strings.TrimSpace(sub)
	if sub == "" {
		return "", errors.New("empty subject error")
	}
	return sub, nil
}
