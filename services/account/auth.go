package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slotwise/models"
	"slotwise/utils"
)

// tokenTTL is how long an issued access token stays valid.
const tokenTTL = 7 * 24 * time.Hour

// Register creates a new business-owner account and returns a signed token.
func (s *DefaultAccountService) Register(req models.UserCreate) (*models.Token, error) {
	logger := utils.GetLogger()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Users.GetByEmail(email)
	if err != nil {
		logger.Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         req.Name,
		BusinessID:   req.BusinessID,
		Role:         "business_owner",
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.Insert(&user); err != nil {
		logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		logger.Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.audit("user_registered", user.Email, map[string]any{"user_id": user.ID})

	return &models.Token{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// Login verifies credentials and returns a fresh token. The stored password
// hash never leaves this package.
func (s *DefaultAccountService) Login(req models.UserLogin) (*models.Token, error) {
	logger := utils.GetLogger()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		logger.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := s.Users.TouchLastLogin(user.ID); err != nil {
		logger.Warn("Failed to record last login", zap.String("userId", user.ID), zap.Error(err))
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		logger.Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	s.audit("user_login", user.Email, map[string]any{"user_id": user.ID})

	return &models.Token{AccessToken: token, TokenType: "bearer", User: *user}, nil
}

// GetUserByID fetches the authenticated account for the /me endpoint.
func (s *DefaultAccountService) GetUserByID(userID string) (*models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (s *DefaultAccountService) audit(action, email string, details map[string]any) {
	if s.Audit == nil {
		return
	}
	entry := &models.AuditLog{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		UserEmail: email,
		Details:   details,
		Type:      "info",
	}
	if err := s.Audit.Insert(entry); err != nil {
		utils.GetLogger().Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
