// Package access decides which requests must present credentials.
//
// Read methods pass unconditionally. Every other method needs a Basic
// Authorization header accepted by a CredentialVerifier. The default
// verifier compares against one static username/password pair; swap it for
// a real identity check without touching the method exemption.
package access

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

const (
	ReasonCredentialsRequired = "credentials required"
	ReasonInvalidCredentials  = "invalid credentials"
)

// CredentialVerifier reports whether a username/password pair is accepted.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one configured pair.
type StaticVerifier struct {
	username string
	password string
}

func NewStaticVerifier(username, password string) StaticVerifier {
	return StaticVerifier{username: username, password: password}
}

func (v StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}

// Decision is the outcome of Authorize. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func reject(reason string) Decision { return Decision{Reason: reason} }

// Status is the HTTP status a rejected decision maps to.
func (d Decision) Status() int {
	if d.Allowed {
		return http.StatusOK
	}
	return http.StatusUnauthorized
}

// Gate is immutable after construction and safe for concurrent use.
type Gate struct {
	verifier CredentialVerifier
}

func NewGate(verifier CredentialVerifier) *Gate {
	return &Gate{verifier: verifier}
}

// IsReadMethod reports whether method is exempt from the credential check.
func IsReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// Authorize never inspects the header for read methods. A header that cannot
// be decoded is reported as invalid credentials, same as a wrong password.
func (g *Gate) Authorize(method, authorization string) Decision {
	if IsReadMethod(method) {
		return allow()
	}

	if authorization == "" {
		return reject(ReasonCredentialsRequired)
	}

	username, password, ok := parseBasic(authorization)
	if !ok || !g.verifier.Verify(username, password) {
		return reject(ReasonInvalidCredentials)
	}

	return allow()
}

func parseBasic(header string) (username, password string, ok bool) {
	scheme, encoded, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}

	return strings.Cut(string(decoded), ":")
}
