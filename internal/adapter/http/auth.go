package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
)

type contextKey string

const callerKey = contextKey("caller")

// AccountHeader carries the caller identity when JWT auth is disabled.
const AccountHeader = "X-Account-ID"

// Authenticator resolves the calling account of a request. With a secret it
// accepts HS256 bearer tokens and uses the "sub" claim; without one it
// trusts AccountHeader.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

// NewAuthenticator builds an Authenticator from cfg. Tokens must be HS256,
// carry an expiry and, when JWTIssuer is set, name that issuer.
func NewAuthenticator(cfg configs.Auth) *Authenticator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30 * time.Second),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	return &Authenticator{secret: []byte(cfg.JWTSecret), parser: jwt.NewParser(opts...)}
}

// Insecure reports whether identities are taken from a plain header.
func (a *Authenticator) Insecure() bool { return len(a.secret) == 0 }

// Middleware rejects requests without a resolvable caller.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, detail := a.identify(r)
		if caller == "" {
			writeProblem(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthenticated", detail)
			return
		}
		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) identify(r *http.Request) (domain.AccountID, string) {
	if a.Insecure() {
		id := strings.TrimSpace(r.Header.Get(AccountHeader))
		if id == "" {
			return "", AccountHeader + " header required"
		}
		return domain.AccountID(id), ""
	}

	authHeader := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return "", "bearer token required"
	}
	claims := &jwt.RegisteredClaims{}
	_, err := a.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", "invalid token"
	}
	if claims.Subject == "" {
		return "", "token has no subject"
	}
	return domain.AccountID(claims.Subject), ""
}

// CallerFrom returns the authenticated account stored by Middleware.
func CallerFrom(ctx context.Context) (domain.AccountID, bool) {
	caller, ok := ctx.Value(callerKey).(domain.AccountID)
	return caller, ok && caller != ""
}
