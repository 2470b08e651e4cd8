package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the identity fields carried by a bearer token.
type Claims struct {
	ID     int64       `json:"id"`
	Nombre string      `json:"nombre"`
	Email  string      `json:"email"`
	Rol    models.Role `json:"rol"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token role is one of roles.
func (c *Claims) HasRole(roles ...models.Role) bool {
	for _, role := range roles {
		if c.Rol == role {
			return true
		}
	}
	return false
}

// CanActFor reports whether the caller may read or write data owned by userID.
func (c *Claims) CanActFor(userID int64) bool {
	return c.ID == userID || c.HasRole(models.RoleAdmin, models.RoleMaestro)
}

type TokenManager struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

func NewTokenManager(secret string, expiration time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
		now:        time.Now,
	}
}

func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := m.now()
	claims := &Claims{
		ID:     user.ID,
		Nombre: user.Nombre,
		Email:  user.Email,
		Rol:    user.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
