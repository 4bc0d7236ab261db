package auth

import (
	"crypto/subtle"
	"errors"
	"log"

	"fraudguard/internal/models"
	"fraudguard/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(email, password string) (string, string, error)
	Refresh(refreshToken string) (string, string, error)
}

// Credential is the single operator account configured through the
// environment. There is no user table; the password is stored as a bcrypt
// hash outside the process.
type Credential struct {
	Email        string
	PasswordHash string
	Role         string
}

type service struct {
	cred Credential
}

func NewService(cred Credential) Service {
	if cred.Role == "" {
		cred.Role = "operator"
	}
	return &service{cred: cred}
}

func (s *service) Login(email, password string) (string, string, error) {
	if subtle.ConstantTimeCompare([]byte(email), []byte(s.cred.Email)) != 1 {
		log.Printf("Login failed: unknown operator %s", email)
		return "", "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cred.PasswordHash), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for operator %s", email)
		return "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.OperatorClaims{
		Email:       s.cred.Email,
		Role:        s.cred.Role,
		Permissions: models.GetDefaultPermissions(s.cred.Role),
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return "", "", errors.New("error generating tokens")
	}

	return accessToken, refreshToken, nil
}

func (s *service) Refresh(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	if claims.Email != s.cred.Email {
		return "", "", errors.New("invalid refresh token")
	}

	return utils.GenerateTokens(&models.OperatorClaims{
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: models.GetDefaultPermissions(claims.Role),
	})
}
