package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"janseva/internal/dto"
	"janseva/internal/models"
	"janseva/internal/repository"
	"janseva/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin already exists")
)

type AuthService struct {
	adminRepo  *repository.AdminRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthService(adminRepo *repository.AdminRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AdminResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, _ := s.adminRepo.GetByUsername(ctx, username)
	if existing != nil {
		return nil, ErrAdminExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role != "admin" && role != "superadmin" {
		role = "admin"
	}

	now := time.Now()
	admin := &models.Admin{
		ID:        uuid.New(),
		Username:  username,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return &dto.AdminResponse{
		ID:       admin.ID.String(),
		Username: admin.Username,
		Role:     admin.Role,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Don't leak whether the username exists
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	// Best-effort; a failed lastLoginAt update must not fail the login
	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		s.logger.Warn("Failed to update last login", zap.Error(err))
	}

	return s.buildAuthResponse(admin, now)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	adminID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	return s.buildAuthResponse(admin, time.Time{})
}

func (s *AuthService) buildAuthResponse(admin *models.Admin, lastLogin time.Time) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(admin.ID.String(), admin.Username, admin.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(admin.ID.String())
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		Admin: dto.AdminResponse{
			ID:       admin.ID.String(),
			Username: admin.Username,
			Role:     admin.Role,
		},
	}
	if !lastLogin.IsZero() {
		resp.Admin.LastLoginAt = lastLogin.Format(time.RFC3339)
	} else if admin.LastLoginAt != nil {
		resp.Admin.LastLoginAt = admin.LastLoginAt.Format(time.RFC3339)
	}

	return resp, nil
}
