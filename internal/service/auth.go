package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"leadassign/internal/auth"
	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
	"leadassign/internal/repository"
	"leadassign/pkg/db/transactor"
)

// AuthService issues access tokens for owner accounts. It is thin
// plumbing around the pipeline - uploads only record the admin id it put
// into the request context.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*model.Admin, error)
	Login(ctx context.Context, email, password string, at time.Time) (*auth.Jwt, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	trx       transactor.Transactor
	jwtIssuer *auth.JwtIssuer
}

func NewAuthService(adminRepo repository.AdminRepository, trx transactor.Transactor, jwtIssuer *auth.JwtIssuer) AuthService {
	return &authService{adminRepo: adminRepo, trx: trx, jwtIssuer: jwtIssuer}
}

func (s *authService) Signup(ctx context.Context, email, password string) (*model.Admin, error) {
	email = strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	// uniqueness check and insert share one transaction
	err = s.trx.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.adminRepo.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.DuplicateEmailError{Email: email}
		}
		return s.adminRepo.Create(txCtx, admin)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *authService) Login(ctx context.Context, email, password string, at time.Time) (*auth.Jwt, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.jwtIssuer.Sign(admin.ID, at)
}
