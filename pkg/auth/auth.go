package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	AuthorizationHeader = "Authorization"
	Bearer              = "Bearer "

	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrNoProfile    = errors.New("no profile in context")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type Config struct {
	JWTKey string `yaml:"jwtKey" envconfig:"JWT_KEY" required:"true"`
}

// Profile is the acting principal as resolved by the identity provider.
type Profile struct {
	UserID   int64    `json:"uid"`
	FullName string   `json:"fullname"`
	Roles    []string `json:"roles"`
}

func (p Profile) HasRole(role string) bool {
	for i := range p.Roles {
		if p.Roles[i] == role {
			return true
		}
	}
	return false
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(key []byte, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Profile.UserID == 0 {
		return nil, errors.Wrap(ErrInvalidToken, "empty uid")
	}
	return claims, nil
}

// NewToken signs a token for p. Tokens are normally minted by the identity provider.
func NewToken(key []byte, p Profile, ttl time.Duration) (string, error) {
	claims := &Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

type profileKey struct{}

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

func GetProfile(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(profileKey{}).(Profile)
	if !ok {
		return Profile{}, ErrNoProfile
	}
	return p, nil
}
