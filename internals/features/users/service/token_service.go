package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/model"
)

const accessTTL = 24 * time.Hour

// GenerateToken issues the HS256 access token for a user.
func GenerateToken(secret string, u model.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SetTokenCookie sends the HTTP-only token cookie (1 day).
func SetTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(accessTTL),
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
	})
}

// ClearTokenCookie expires the token cookie.
func ClearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
	})
}

// VerifyToken reports whether the token parses and is still valid.
func VerifyToken(secret, token string) bool {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	return err == nil && tok.Valid
}
