package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"
	"time"
)

const defaultVerifyTimeout = 5 * time.Second

var (
	// ErrTokenMissing is returned when a request carries no bearer token.
	ErrTokenMissing = errors.New("auth: bearer token missing")
	// ErrTokenInvalid is returned when a verifier rejects a token.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Principal identifies the caller of an admin route.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// TokenVerifier turns a bearer token into a Principal.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// VerifierFunc adapts a function to TokenVerifier.
type VerifierFunc func(ctx context.Context, token string) (*Principal, error)

func (f VerifierFunc) Verify(ctx context.Context, token string) (*Principal, error) {
	return f(ctx, token)
}

// StaticVerifier accepts a fixed token list. Meant for development setups.
type StaticVerifier struct {
	tokens []string
}

func NewStaticVerifier(tokens ...string) *StaticVerifier {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return &StaticVerifier{tokens: out}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	for i, candidate := range v.tokens {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(token)) == 1 {
			return &Principal{UID: "static-" + strconv.Itoa(i+1)}, nil
		}
	}
	return nil, ErrTokenInvalid
}

// AllowAll admits every request as an anonymous admin. Used when auth is
// disabled.
type AllowAll struct{}

func (AllowAll) Verify(context.Context, string) (*Principal, error) {
	return &Principal{UID: "anonymous"}, nil
}

type principalKey struct{}

// WithPrincipal stores p on ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
