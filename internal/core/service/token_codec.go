package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finbrief/member-portal/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenCodec creates and parses signed, time-bounded bearer tokens.
// Construction is immutable: secret and default TTL are fixed at startup so
// the codec is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), method: jwt.SigningMethodHS256, ttl: ttl}
}

// TTL returns the default time-to-live applied when claims carry no expiry.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Create signs the claims. When "exp" is absent it is injected as
// now + ttl in unix seconds (fractional allowed); the signature covers all
// claims including the injected expiry. A non-positive ttl selects the
// configured default.
func (c *TokenCodec) Create(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	toEncode := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		toEncode[k] = v
	}
	if _, ok := toEncode["exp"]; !ok {
		expiry := time.Now().Add(ttl)
		toEncode["exp"] = float64(expiry.UnixNano()) / float64(time.Second)
	}

	t := jwt.NewWithClaims(c.method, toEncode)
	return t.SignedString(c.secret)
}

// Decode verifies signature, structure and expiry. Every verification
// failure collapses to domain.ErrTokenInvalid: a forged token and an
// expired one are indistinguishable at this layer. A token that verifies
// but carries no subject is invalid too, since it cannot resolve to a
// principal.
func (c *TokenCodec) Decode(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
