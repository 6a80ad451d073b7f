package authz

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

var (
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrAudienceMismatch = errors.New("token audience mismatch")
	ErrIssuerMismatch   = errors.New("token issuer mismatch")
)

// Audience accepts both the string and the array form of the "aud" claim.
type Audience []string

func (a *Audience) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Audience{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("aud: %w", err)
	}
	*a = many
	return nil
}

type Claims struct {
	Issuer      string   `json:"iss,omitempty"`
	Subject     string   `json:"sub,omitempty"`
	Audience    Audience `json:"aud,omitempty"`
	ExpiresAt   int64    `json:"exp,omitempty"`
	IssuedAt    int64    `json:"iat,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// Valid checks the time-based claims. Issuer and audience are checked by the
// Verifier, which knows the expected values.
func (c *Claims) Valid() error {
	now := time.Now().Unix()
	if c.ExpiresAt != 0 && now > c.ExpiresAt {
		return jwt.NewValidationError("token is expired", jwt.ValidationErrorExpired)
	}
	if c.IssuedAt != 0 && now < c.IssuedAt {
		return jwt.NewValidationError("token used before issued", jwt.ValidationErrorIssuedAt)
	}
	return nil
}

// HasPermission reports whether the token grants perm, e.g. "get:drinks-detail".
func (c *Claims) HasPermission(perm string) bool {
	return slices.Contains(c.Permissions, perm)
}

// Verifier validates RS256 access tokens issued for a Client's tenant and audience.
type Verifier struct {
	Client    *Client
	PublicKey *rsa.PublicKey
	Log       *zap.Logger
}

func (v *Verifier) Verify(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.PublicKey, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			v.log().Warn("jwt is expired and no longer valid")
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		v.log().Warn("unable to validate JWT", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if claims.Issuer != v.Client.Issuer() {
		v.log().Warn("unexpected issuer", zap.String("iss", claims.Issuer))
		return nil, fmt.Errorf("%w: got %q", ErrIssuerMismatch, claims.Issuer)
	}
	if !slices.Contains(claims.Audience, v.Client.Audience()) {
		v.log().Warn("unexpected audience", zap.Strings("aud", claims.Audience))
		return nil, fmt.Errorf("%w: want %q", ErrAudienceMismatch, v.Client.Audience())
	}
	return &claims, nil
}

func (v *Verifier) log() *zap.Logger {
	if v.Log == nil {
		return zap.NewNop()
	}
	return v.Log
}
