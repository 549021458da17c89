package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// purposeKey holds the signing secret and lifetime for one token purpose
type purposeKey struct {
	secret []byte
	ttl    time.Duration
}

// JWTServiceImpl implements domain.TokenService. Each purpose signs with
// its own secret, so a token issued for one purpose never verifies as
// another.
type JWTServiceImpl struct {
	purposes map[domain.TokenPurpose]purposeKey
	issuer   string
}

// JWTConfig carries the per-purpose secrets and lifetimes
type JWTConfig struct {
	RegisterSecret string
	AccessSecret   string
	RefreshSecret  string
	ResetSecret    string
	RegisterTTL    time.Duration
	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	ResetTTL       time.Duration
	Issuer         string
}

// NewJWTService creates a new JWT token service
func NewJWTService(cfg JWTConfig) domain.TokenService {
	return &JWTServiceImpl{
		issuer: cfg.Issuer,
		purposes: map[domain.TokenPurpose]purposeKey{
			domain.PurposeRegister: {secret: []byte(cfg.RegisterSecret), ttl: cfg.RegisterTTL},
			domain.PurposeAccess:   {secret: []byte(cfg.AccessSecret), ttl: cfg.AccessTTL},
			domain.PurposeRefresh:  {secret: []byte(cfg.RefreshSecret), ttl: cfg.RefreshTTL},
			domain.PurposeReset:    {secret: []byte(cfg.ResetSecret), ttl: cfg.ResetTTL},
		},
	}
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(purpose domain.TokenPurpose, claims domain.Claims) (string, error) {
	key, ok := j.purposes[purpose]
	if !ok || len(key.secret) == 0 {
		return "", domain.ErrTokenConfig
	}

	now := time.Now()
	mapClaims := jwt.MapClaims{
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(key.ttl).Unix(),
	}
	for k, v := range claims {
		mapClaims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(key.secret)
}

// Verify implements domain.TokenService. Expiry is enforced here at parse
// time regardless of when the token was issued.
func (j *JWTServiceImpl) Verify(purpose domain.TokenPurpose, tokenString string) (domain.Claims, error) {
	key, ok := j.purposes[purpose]
	if !ok || len(key.secret) == 0 {
		return nil, domain.ErrTokenConfig
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return key.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	claims := make(domain.Claims, len(mapClaims))
	for k, v := range mapClaims {
		claims[k] = v
	}
	return claims, nil
}
