// jcw/controllers/auth.go
package controllers

import (
	"context"
	"errors"
	"time"

	"jcw/jcw/config"
	"jcw/jcw/services/activity"
	"jcw/jcw/sources/psql/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("admin login is not configured")
)

type AuthController struct {
	cfg      config.Config
	activity *activity.Recorder
	now      func() time.Time
}

func NewAuthController(cfg config.Config, rec *activity.Recorder) *AuthController {
	return &AuthController{cfg: cfg, activity: rec, now: time.Now}
}

// Login checks the admin credentials and issues an HS256 token.
func (c *AuthController) Login(ctx context.Context, username, password string) (string, error) {
	if c.cfg.JWTSecret == "" || c.cfg.AdminPasswordHash == "" {
		return "", ErrAuthDisabled
	}
	if username != c.cfg.AdminUsername {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	ttl := c.cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := c.now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return "", err
	}
	c.activity.Record(ctx, activity.Entry{Action: models.ActionLogin, ResourceType: models.ResourceAdmin, ResourceID: username})
	return token, nil
}
