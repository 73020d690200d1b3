package configs

// Auth configures how callers are identified. With an empty JWTSecret the
// X-Account-ID header is trusted as-is, which is only acceptable locally.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER"`
}
