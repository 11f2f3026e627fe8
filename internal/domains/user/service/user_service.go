package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/query"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	store      cache.Cache
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager, store cache.Cache) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		store:      store,
	}
}

// ========================================
// AUTH
// ========================================

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	// Advisory pre-check; the unique index closes the race.
	taken, err := s.repo.EmailExists(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	u := &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        optionalString(req.Phone),
		Address:      optionalString(req.Address),
		Role:         user.RoleMember,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id

	return s.issueTokens(u)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Do not reveal whether the email exists.
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrAccountInactive
	}

	return s.issueTokens(u)
}

// Logout denylists the presented access token until its natural expiry.
func (s *userService) Logout(ctx context.Context, claims *jwt.Claims) error {
	return s.denylist(ctx, claims)
}

// Refresh rotates the token pair: the presented refresh token is
// denylisted so it cannot be replayed.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*user.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	revoked, err := s.store.Exists(ctx, jwt.DenylistKey(claims.ID))
	if err != nil {
		logger.Error("refresh token denylist check failed", err)
	} else if revoked {
		return nil, user.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, user.ErrAccountInactive
	}

	if err := s.denylist(ctx, claims); err != nil {
		logger.Error("failed to denylist rotated refresh token", err)
	}

	return s.issueTokens(u)
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	return s.GetByID(ctx, userID)
}

// ========================================
// ADMIN USER MANAGEMENT
// ========================================

func (s *userService) Create(ctx context.Context, req *user.CreateUserRequest) (*user.UserDTO, error) {
	taken, err := s.repo.EmailExists(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var membershipExpiresAt *time.Time
	if req.MembershipExpiresAt != "" {
		t, err := time.Parse(user.DateLayout, req.MembershipExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("parse membership_expires_at: %w", err)
		}
		membershipExpiresAt = &t
	}

	now := time.Now()
	u := &user.User{
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        string(hash),
		Phone:               optionalString(req.Phone),
		Address:             optionalString(req.Address),
		Role:                req.Role,
		IsActive:            isActive,
		MembershipExpiresAt: membershipExpiresAt,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) List(ctx context.Context, req *user.ListUsersRequest) (*user.ListUsersResponse, error) {
	filter := &user.ListFilter{
		Search:   req.Search,
		IsActive: req.IsActive,
		Sort:     query.ResolveSort(req.SortBy, req.SortOrder, user.UserSortFields),
		Page:     query.NewPagination(req.Page, req.PerPage),
	}

	if role := user.Role(req.Role); req.Role != "" && role.IsValid() {
		filter.Role = &role
	}

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}

	return &user.ListUsersResponse{
		Users: dtos,
		Meta:  filter.Page.BuildMeta(total),
	}, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		taken, err := s.repo.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, user.ErrEmailAlreadyExists
		}
		u.Email = *req.Email
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Phone != nil {
		u.Phone = optionalString(*req.Phone)
	}
	if req.Address != nil {
		u.Address = optionalString(*req.Address)
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.MembershipExpiresAt != nil {
		if *req.MembershipExpiresAt == "" {
			u.MembershipExpiresAt = nil
		} else {
			t, err := time.Parse(user.DateLayout, *req.MembershipExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("parse membership_expires_at: %w", err)
			}
			u.MembershipExpiresAt = &t
		}
	}

	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ========================================
// HELPERS
// ========================================

func (s *userService) issueTokens(u *user.User) (*user.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &user.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.jwtManager.AccessExpiry()),
		User:         u.ToDTO(),
	}, nil
}

// denylist stores the token id until the token would expire anyway.
func (s *userService) denylist(ctx context.Context, claims *jwt.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	return s.store.Set(ctx, jwt.DenylistKey(claims.ID), true, ttl)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
