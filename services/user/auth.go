package user

import (
	"fmt"
	"net/mail"
	"time"

	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued auth token stays valid.
const tokenTTL = 72 * time.Hour

// RegisterUser validates the request, hashes the password and persists a new
// account, returning a freshly issued auth token. Admin accounts are seeded
// out of band; only seeker and provider roles can self-register.
func (s *DefaultUserService) RegisterUser(req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if req.Role != models.RoleSeeker && req.Role != models.RoleProvider {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleSeeker, models.RoleProvider)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hashedPassword),
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	tokenHash := utils.HashToken(token)
	userObj.TokenHash = tokenHash

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.CacheAuthToken(userObj.ID, tokenHash)

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
		Role:  userObj.Role,
	}, nil
}

// AuthenticateUser verifies the credentials and rotates the account's auth token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	utils.CacheAuthToken(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
		Role:  userRec.Role,
	}, nil
}

// RevokeAuthToken invalidates the account's current token.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.DropAuthToken(userID)
	return nil
}
