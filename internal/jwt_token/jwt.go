package jwttoken

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "recordkeeper/pkg/domain"
	dErrors "recordkeeper/pkg/domain-errors"
	"recordkeeper/pkg/requestcontext"
)

// AccountClaims are the claims of an account token. The subject is the
// account the caller acts for.
type AccountClaims struct {
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 account tokens.
type JWTService struct {
	signingKey []byte
	issuer     string
	tokenTTL   time.Duration
}

func NewJWTService(signingKey string, issuer string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// GenerateAccountToken signs a token for acct and returns it with its JTI.
func (s *JWTService) GenerateAccountToken(ctx context.Context, acct id.AccountID) (string, string, error) {
	if acct.IsNil() {
		return "", "", dErrors.New(dErrors.CodeInvalidInput, "account ID cannot be nil")
	}

	jti := uuid.NewString()
	now := requestcontext.Now(ctx)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccountClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        jti,
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return signed, jti, nil
}

// ValidateToken checks signature, algorithm, expiry and issuer.
func (s *JWTService) ValidateToken(tokenString string) (*AccountClaims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "empty token")
	}

	claims := new(AccountClaims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid token issuer")
		default:
			return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid token")
		}
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid token")
	}

	return claims, nil
}
