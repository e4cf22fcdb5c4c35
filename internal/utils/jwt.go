package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and validating signed tokens
)

// Token verification failures. Both map to the same 401 response at the
// HTTP boundary; the distinction only exists for logs and tests.
var (
	// ErrTokenInvalid covers malformed tokens, bad signatures and
	// unexpected signing methods.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired means the signature checked out but the token is
	// past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// AccessToken represents a signed JWT session token along with its expiry.
// The Token field contains the JWT string. Exp stores the expiration
// timestamp as a time.Time. Tokens are stateless: nothing is persisted
// server-side and a token cannot be revoked before it expires.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims are the identity claims embedded in a session token: the user
// id from the `sub` claim and the role name from the `role` claim.
type Claims struct {
	UserID uint64
	Role   string
}

// NewAccessToken builds and signs an HS256 JWT for a user. It takes the
// signing secret, the user ID, the user's role, and a TTL in hours. The
// JWT includes standard claims: subject (sub), role, expiration (exp)
// and issued at (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlHours int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw token string and returns
// the embedded claims. Verification is deterministic given the secret:
// it performs no I/O and mutates nothing. Expired tokens yield
// ErrTokenExpired; every other failure yields ErrTokenInvalid.
func VerifyAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC before touching claims.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	var c Claims
	// Numeric JSON values decode as float64; some issuers encode the
	// subject as a string instead.
	switch sub := mc["sub"].(type) {
	case float64:
		c.UserID = uint64(sub)
	case string:
		n, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return Claims{}, ErrTokenInvalid
		}
		c.UserID = n
	default:
		return Claims{}, ErrTokenInvalid
	}
	role, ok := mc["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrTokenInvalid
	}
	c.Role = role
	return c, nil
}
