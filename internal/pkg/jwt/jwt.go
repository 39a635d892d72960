package jwt

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateEditorToken(subject string) (auth.TokenResponse, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenTTL  time.Duration
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, tokenTTL time.Duration) Service {
	return &JWTService{
		tokenTTL:  tokenTTL,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateEditorToken mints a token that unlocks the write routes.
func (j *JWTService) GenerateEditorToken(subject string) (auth.TokenResponse, error) {
	now := time.Now()
	expiresAt := now.Add(j.tokenTTL).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"type": auth.TokenTypeEditor,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		Token:     tokenString,
		Subject:   subject,
		ExpiresAt: expiresAt,
	}, nil
}
