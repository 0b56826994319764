package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/middleware"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/redis"
	"github.com/meinhoongagan/home-services-app/utils"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Role           string `json:"role"`
	Experience     int    `json:"experience"`
	Qualifications string `json:"qualifications"`
}

// Register handles user registration
func Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	if input.Email == "" || input.Password == "" || input.Name == "" || input.Phone == "" {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Missing required fields")
	}
	if len(input.Password) < 6 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Password must be at least 6 characters")
	}

	// Roles are fixed at registration. Admin accounts only come from the seed.
	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleProvider {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Role must be customer or provider")
	}

	email := strings.ToLower(input.Email)

	// Check if user already exists
	var existingUser models.User
	if db.DB.Where("email = ?", email).First(&existingUser).RowsAffected > 0 {
		return utils.Fail(c, fiber.StatusConflict, utils.ErrConflict, "User with this email already exists")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to hash password")
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Password: string(hashedPassword),
		Phone:    input.Phone,
		Address:  input.Address,
		Role:     role,
		IsActive: true,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to create user")
	}

	// Providers start unapproved until an admin signs off.
	if role == models.RoleProvider {
		profile := models.ProviderProfile{
			ProviderID:     user.ID,
			Experience:     input.Experience,
			Qualifications: input.Qualifications,
		}
		if err := db.DB.Create(&profile).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to create provider profile")
		}
		user.ProviderProfile = &profile
	}

	// Remove password from response
	user.Password = ""

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	// Find user
	var user models.User
	if db.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid credentials")
	}

	// Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid credentials")
	}

	if !user.IsActive {
		return utils.Fail(c, fiber.StatusForbidden, utils.ErrForbidden, "Your account has been deactivated")
	}

	// Create access token
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.JWTSecret()))
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to generate token")
	}

	// Create refresh token with longer expiration
	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 day expiration
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(middleware.JWTSecret()))
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to generate refresh token")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetUserProfile returns the current user's profile
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("ProviderProfile").First(&user, userID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "User not found")
	}

	// Don't send password
	user.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// Logout revokes the presented token via the Redis denylist. Without Redis
// the token simply remains valid until it expires.
func Logout(c *fiber.Ctx) error {
	raw := middleware.BearerToken(c)
	if raw != "" {
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok {
					ttl := time.Until(time.Unix(int64(exp), 0))
					if err := redis.RevokeToken(raw, ttl); err != nil {
						return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to revoke token")
					}
				}
			}
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(middleware.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "Invalid refresh token")
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"email": claims["email"],
		"role":  claims["role"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString([]byte(middleware.JWTSecret()))
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   tokenString,
	})
}
