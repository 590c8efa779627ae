package auth

import (
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
)

// Claims binds a token to a single user id. Nothing else is trusted from the
// token; the middleware reloads the user record on every request.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed cookie credential. Stateless:
// a pure function of the secret, the payload and the clock.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, expireDays int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(expireDays) * 24 * time.Hour,
	}
}

func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the user id embedded in tokenStr, or Unauthorized when the
// signature is wrong or the token expired.
func (s *TokenService) Verify(tokenStr string) (uint, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.New(apperrors.KindUnauthorized, "User Not Authorized")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindUnauthorized, "User Not Authorized")
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.UserID == 0 {
		return 0, apperrors.New(apperrors.KindUnauthorized, "User Not Authorized")
	}
	return claims.UserID, nil
}

// TTL is the token lifetime, also used as the cookie max-age.
func (s *TokenService) TTL() time.Duration { return s.ttl }
