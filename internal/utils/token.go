package utils // utils provides helpers for token issuance and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. ErrTokenExpired means the token was well
// formed and correctly signed but past its exp claim; everything else
// (bad signature, garbage input, missing subject) is ErrTokenMalformed.
// The distinction matters because the middleware surfaces different
// messages for the two cases.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("invalid token")
)

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// stateless: there is no revocation list, so a token stays cryptographically
// valid until its TTL elapses. A deleted admin is locked out anyway because
// the middleware re-resolves the subject on every request.
type TokenService struct {
	Secret string
	TTL    time.Duration
}

// Issue signs a token whose subject is the given admin ID. The expiry is
// now+TTL; iat is included for audit purposes.
func (s TokenService) Issue(subjectID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"exp": now.Add(s.TTL).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.Secret))
}

// Verify parses and validates a token, returning its subject. Signature and
// expiry are checked here; the caller is responsible for resolving the
// subject to a live admin record. Order matters: an expired-but-genuine
// token must report ErrTokenExpired, not a lookup failure.
func (s TokenService) Verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return "", ErrTokenMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenMalformed
	}
	return sub, nil
}
