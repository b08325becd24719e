package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ksagri/agroexport-api/cmd/config"
	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
	redisrepo "github.com/ksagri/agroexport-api/repository/redis"
	userrepo "github.com/ksagri/agroexport-api/repository/user"
	"github.com/ksagri/agroexport-api/utils/errors"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.UserEntity, error)
	GetProfile(ctx context.Context, userID uint64) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	ChangePassword(ctx context.Context, userID uint64, req *model.ChangePasswordRequest) error
	ListUsers(ctx context.Context, filter *model.UserFilter) (*model.UserListResult, error)
	DeleteUser(ctx context.Context, actorID, userID uint64) error
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// role is never taken from the payload
	userEntity := &model.UserEntity{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
		Company:      req.Company,
		Country:      req.Country,
		BusinessType: req.BusinessType,
		Role:         constant.RoleCustomer,
		Active:       true,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return userEntity, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if user.IsLocked() {
		return nil, errors.SetCustomError(constant.ErrAccountLocked)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedLogin(ctx, user)
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if err := s.userRepo.RecordLogin(ctx, user.ID); err != nil {
		logger.Error("[Login] err RecordLogin", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		User:  user,
		Token: token,
	}, nil
}

// recordFailedLogin bumps the failure counter and locks the account once the
// retry budget is spent. Failures here are logged, not surfaced: the caller
// already returns an invalid-credentials error.
func (s *UserAppImpl) recordFailedLogin(ctx context.Context, user *model.UserEntity) {
	attempts := user.FailedAttempts + 1
	var lockedUntil *time.Time
	if attempts >= s.config.Auth.MaxLoginRetries {
		until := time.Now().Add(s.config.Auth.LockoutDuration)
		lockedUntil = &until
	}

	if err := s.userRepo.RecordFailedLogin(ctx, user.ID, attempts, lockedUntil); err != nil {
		logger.Error("[Login] err RecordFailedLogin", zap.String("error", err.Error()))
	}
}

// ValidateToken verifies a bearer token and resolves it to the account it
// names. A structurally valid token over a locked account fails with a
// distinct locked error rather than a plain authentication failure.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.UserEntity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	jti := claims.ID
	if jti == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil || sessionUserID != userID {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ValidateToken] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	if user.IsLocked() {
		return nil, errors.SetCustomError(constant.ErrAccountLocked)
	}

	return user, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	found, err := s.userRepo.UpdateProfile(ctx, userID, req)
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return s.GetProfile(ctx, userID)
}

func (s *UserAppImpl) ChangePassword(ctx context.Context, userID uint64, req *model.ChangePasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ChangePassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidPassword)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ChangePassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Error("[ChangePassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context, filter *model.UserFilter) (*model.UserListResult, error) {
	items, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.UserListResult{Items: items, Total: total}, nil
}

func (s *UserAppImpl) DeleteUser(ctx context.Context, actorID, userID uint64) error {
	if actorID == userID {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	deleted, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
