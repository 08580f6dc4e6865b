package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

// AuthConfig defines configuration for boundary token issuance.
type AuthConfig struct {
	Secret          string
	Expiration      time.Duration
	Issuer          string
	BootstrapSecret string // bcrypt hash of the shared bootstrap secret
}

// AuthService resolves bearer tokens to opaque caller identities. The
// ledger never sees tokens; it only receives the identity this service
// extracts.
type AuthService struct {
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{validator: validate, logger: logger, config: config}
}

// IssueToken exchanges the bootstrap secret for an identity token. Identity
// strings are opaque; the ledger decides what roles they hold.
func (s *AuthService) IssueToken(req models.TokenRequest) (*models.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid token payload")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.BootstrapSecret), []byte(req.Secret)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid bootstrap secret")
	}

	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.Expiration)
	identity := models.Identity(req.Identity)
	claims := &models.Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   req.Identity,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.logger.Info("token issued", zap.String("identity", req.Identity))
	return &models.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.config.Expiration.Seconds()),
		IssuedAt:    issuedAt,
		Identity:    identity,
	}, nil
}

// ValidateToken parses and validates an access token returning the caller
// identity.
func (s *AuthService) ValidateToken(tokenString string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	if claims.Identity.IsZero() {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "token carries no identity")
	}

	return claims.Identity, nil
}
