package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"
	"yamdb/pkg/mailer"
	"yamdb/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mailTimeout = 10 * time.Second

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	tokens *utils.TokenManager
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *utils.TokenManager,
	mailer mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		tokens: tokens,
		mailer: mailer,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Signup registers a user, or re-sends the code when the exact username and email pair already exists.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Signup validation failed", zap.Error(err))
		return nil, err
	}

	byUsername, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	byEmail, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}

	var user *entity.User
	switch {
	case byUsername != nil && byEmail != nil && byUsername.ID == byEmail.ID:
		user = byUsername
	case byUsername != nil || byEmail != nil:
		fields := make(map[string]string)
		if byUsername != nil {
			fields["username"] = "A user with that username already exists"
		}
		if byEmail != nil {
			fields["email"] = "A user with that email already exists"
		}
		return nil, &ValidationError{Fields: fields}
	default:
		now := time.Now()
		user = &entity.User{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username: req.Username,
			Email:    req.Email,
			Role:     entity.RoleUser,
			IsActive: true,
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, newValidationError("username", "A user with that username or email already exists")
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.log.Info("User signed up",
			zap.String("user_id", user.ID.String()),
			zap.String("username", user.Username),
		)
	}

	if err := s.sendConfirmationCode(ctx, user); err != nil {
		return nil, err
	}

	return &response.SignupResponse{Email: user.Email, Username: user.Username}, nil
}

func (s *authService) sendConfirmationCode(ctx context.Context, user *entity.User) error {
	code, err := utils.GenerateOTP(s.config.OTP.Length)
	if err != nil {
		return fmt.Errorf("generate confirmation code: %w", err)
	}
	hash, err := utils.HashSecret(code)
	if err != nil {
		return fmt.Errorf("hash confirmation code: %w", err)
	}

	if err := s.repo.ConfirmationCode.InvalidateForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("invalidate old codes: %w", err)
	}

	now := time.Now()
	record := &entity.ConfirmationCode{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		CodeHash:   hash,
		ExpiresAt:  now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}
	if err := s.repo.ConfirmationCode.Create(ctx, record); err != nil {
		return fmt.Errorf("store confirmation code: %w", err)
	}

	mailCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()

	body := fmt.Sprintf("Hello, %s!\n\nYour confirmation code: %s\nIt expires in %d minutes.\n",
		user.Username, code, s.config.OTP.ExpiryMinutes)
	if err := s.mailer.Send(mailCtx, user.Email, "YaMDb confirmation code", body); err != nil {
		s.log.Error("Failed to send confirmation code",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("send confirmation code: %w", err)
	}

	return nil
}

// Token exchanges a valid confirmation code for a JWT. Codes are single use.
func (s *authService) Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, notFound("user")
	}

	code, err := s.repo.ConfirmationCode.FindLatestActive(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find confirmation code: %w", err)
	}
	if code == nil || !utils.CheckSecretHash(req.ConfirmationCode, code.CodeHash) {
		s.log.Warn("Invalid confirmation code", zap.String("username", req.Username))
		return nil, ErrInvalidCode
	}

	if err := s.repo.ConfirmationCode.MarkAsUsed(ctx, code.ID); err != nil {
		if errors.Is(err, repository.ErrCodeAlreadyUsed) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("consume confirmation code: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Token issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt),
	)

	return &response.TokenResponse{Token: token}, nil
}
