package middleware

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/home-services-app/redis"
	"github.com/meinhoongagan/home-services-app/utils"
)

// JWTSecret returns the credential-signing secret.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with secure key in production
	}
	return secret
}

// Protected validates the bearer token and stores userID and role in locals.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(JWTSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			if redis.IsTokenRevoked(BearerToken(c)) {
				return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Token has been revoked")
			}

			userToken := c.Locals("user")
			token, ok := userToken.(*jwt.Token)
			if !ok {
				return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid token claims")
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid user ID in token")
			}

			role, ok := claims["role"].(string)
			if !ok || role == "" {
				return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid role in token")
			}

			c.Locals("userID", userID)
			c.Locals("role", role)

			return c.Next()
		},
	})
}

// BearerToken returns the raw token from the Authorization header.
func BearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// extractUserID handles multiple potential formats of user ID in token
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid or expired token")
}
