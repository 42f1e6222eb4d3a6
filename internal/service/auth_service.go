package service

import (
	"codetrack_backend/internal/config"
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type OAuthLoginRequest struct {
	Provider   string `json:"provider" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Provider = "local"
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	// OAuth-only accounts carry no password hash.
	if user.Password == "" {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// OAuthLogin upserts the account for an already-verified provider identity.
// The provider handshake itself happens upstream; this endpoint only trusts
// its outcome. First login creates the account, later logins refresh it.
func (s *AuthService) OAuthLogin(req OAuthLoginRequest) (string, error) {
	user, err := s.UserRepo.FindByProvider(req.Provider, req.ProviderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Fall back to the email so a local account can be linked.
		user, err = s.UserRepo.FindByEmail(req.Email)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &model.User{
			Name:          req.Name,
			Email:         req.Email,
			Provider:      req.Provider,
			ProviderID:    req.ProviderID,
			Avatar:        req.Avatar,
			EmailVerified: true,
		}
		if err := s.UserRepo.Create(user); err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	} else {
		user.Provider = req.Provider
		user.ProviderID = req.ProviderID
		if req.Avatar != "" {
			user.Avatar = req.Avatar
		}
		user.EmailVerified = true
		if err := s.UserRepo.Update(user); err != nil {
			return "", err
		}
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
