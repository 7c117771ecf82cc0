package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName    = "admin_token"
	TokenDuration = 24 * time.Hour
	adminRole     = "admin"
)

// AuthHandler gates the admin panel behind the shared admin password. This is
// cosmetic gating for a single operator, not an identity system.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type AuthInput struct {
	Cookie string `header:"Cookie"`
}

func (h *AuthHandler) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": adminRole,
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *AuthHandler) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != adminRole {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Authorize checks the admin cookie from a raw Cookie header and returns
// when the session expires.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (time.Time, error) {
	cookies, err := http.ParseCookie(cookieHeader)
	if err != nil {
		return time.Time{}, huma.Error401Unauthorized("Unauthorized: No token found")
	}
	for _, c := range cookies {
		if c.Name != CookieName {
			continue
		}
		claims, err := h.parseToken(c.Value)
		if err != nil {
			return time.Time{}, huma.Error401Unauthorized("Unauthorized: Invalid token")
		}
		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil {
			return time.Time{}, huma.Error401Unauthorized("Unauthorized: Invalid token claims")
		}
		return exp.Time, nil
	}
	return time.Time{}, huma.Error401Unauthorized("Unauthorized: No token found")
}

func sessionCookie(value string, expires time.Time) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    value,
		Expires:  expires,
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

type LoginRequest struct {
	Body struct {
		Password string `json:"password" doc:"Admin password" required:"true"`
	}
}

type LoginResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message   string    `json:"message"`
		ExpiresAt time.Time `json:"expires_at"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	if !h.CheckPassword(input.Body.Password) {
		return nil, huma.Error401Unauthorized("Access Denied: Invalid Credentials")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	expires := time.Now().Add(TokenDuration)
	res := &LoginResponse{SetCookie: sessionCookie(token, expires)}
	res.Body.Message = "Logged in"
	res.Body.ExpiresAt = expires
	return res, nil
}

type LogoutResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
}

func (h *AuthHandler) HandleLogout(ctx context.Context, input *struct{}) (*LogoutResponse, error) {
	c := sessionCookie("", time.Unix(0, 0))
	c.MaxAge = -1
	return &LogoutResponse{SetCookie: c}, nil
}

type SessionResponse struct {
	Body struct {
		Authenticated bool      `json:"authenticated"`
		ExpiresAt     time.Time `json:"expires_at"`
	}
}

func (h *AuthHandler) HandleSession(ctx context.Context, input *AuthInput) (*SessionResponse, error) {
	exp, err := h.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	res := &SessionResponse{}
	res.Body.Authenticated = true
	res.Body.ExpiresAt = exp
	return res, nil
}
