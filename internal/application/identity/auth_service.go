package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthMailer sends the account lifecycle emails
type AuthMailer interface {
	SendConfirmationEmail(name, to, token string) error
	SendPasswordResetEmail(name, to, token string) error
}

// AuthService handles registration, confirmation, login and password
// recovery
type AuthService struct {
	userRepo   identity.UserRepository
	tokenRepo  identity.TokenRepository
	jwtService *auth.JWTService
	mailer     AuthMailer
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service. blacklist may be
// nil when session invalidation is not configured.
func NewAuthService(
	userRepo identity.UserRepository,
	tokenRepo identity.TokenRepository,
	jwtService *auth.JWTService,
	mailer AuthMailer,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		mailer:     mailer,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// CreateAccount registers an unconfirmed user and emails a confirmation
// code. A failure saving the token does not roll the user back; the
// account can recover through RequestConfirmationCode.
func (s *AuthService) CreateAccount(ctx context.Context, input CreateAccountInput) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return shared.NewInternalError("Failed to create account")
	}
	if exists {
		return shared.NewConflictError("User already registered")
	}

	user, err := identity.NewUser(input.Name, input.Email, input.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return shared.NewInternalError("Failed to create account")
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return err
	}

	s.sendConfirmation(user, token)

	s.logger.Info("Account created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// ConfirmAccount redeems a confirmation code. Expired tokens are
// treated as absent.
func (s *AuthService) ConfirmAccount(ctx context.Context, input ConfirmAccountInput) error {
	token, err := s.tokenRepo.FindValid(ctx, input.Token)
	if err != nil {
		return shared.NewNotFoundError("Invalid token")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return shared.NewNotFoundError("Invalid token")
	}

	user.Confirm()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to confirm user", zap.Error(err))
		return shared.NewInternalError("Failed to confirm account")
	}

	if err := s.tokenRepo.Delete(ctx, token.ID); err != nil {
		s.logger.Error("Failed to delete redeemed token", zap.Error(err))
	}

	s.logger.Info("Account confirmed", zap.String("user_id", user.ID.String()))

	return nil
}

// Login verifies credentials and issues a session token. Unconfirmed
// accounts get a fresh confirmation email instead.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", input.Email))
		return nil, shared.NewNotFoundError("User not found")
	}

	if !user.Confirmed {
		token, err := s.issueToken(ctx, user)
		if err != nil {
			return nil, err
		}
		s.sendConfirmation(user, token)

		return nil, shared.NewUnauthorizedError("The account has not been confirmed, we have sent a confirmation email")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewUnauthorizedError("Incorrect password")
	}

	session, err := s.jwtService.GenerateSessionToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return nil, shared.NewInternalError("Failed to log in")
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// RequestConfirmationCode issues a fresh confirmation token for an
// unconfirmed account
func (s *AuthService) RequestConfirmationCode(ctx context.Context, input RequestCodeInput) error {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		return shared.NewNotFoundError("User is not registered")
	}

	if user.Confirmed {
		return shared.NewConflictError("User is already confirmed")
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return err
	}

	s.sendConfirmation(user, token)

	return nil
}

// ForgotPassword issues a reset token and emails it
func (s *AuthService) ForgotPassword(ctx context.Context, input RequestCodeInput) error {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		return shared.NewNotFoundError("User is not registered")
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(user.Name, user.Email, token.Token); err != nil {
		s.logger.Error("Failed to send password reset email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	return nil
}

// ValidateToken checks that a reset code exists and is unexpired
func (s *AuthService) ValidateToken(ctx context.Context, input ValidateTokenInput) error {
	if _, err := s.tokenRepo.FindValid(ctx, input.Token); err != nil {
		return shared.NewNotFoundError("Invalid token")
	}
	return nil
}

// UpdatePasswordWithToken redeems a reset code and stores the new
// password, then invalidates the user's outstanding sessions
func (s *AuthService) UpdatePasswordWithToken(ctx context.Context, input UpdatePasswordWithTokenInput) error {
	token, err := s.tokenRepo.FindValid(ctx, input.Token)
	if err != nil {
		return shared.NewNotFoundError("Invalid token")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return shared.NewNotFoundError("Invalid token")
	}

	if err := user.SetPassword(input.Password); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update password", zap.Error(err))
		return shared.NewInternalError("Failed to update password")
	}

	if err := s.tokenRepo.Delete(ctx, token.ID); err != nil {
		s.logger.Error("Failed to delete redeemed token", zap.Error(err))
	}

	s.invalidateSessions(ctx, user)

	s.logger.Info("Password reset completed", zap.String("user_id", user.ID.String()))

	return nil
}

// GetUser returns the caller's own profile
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewNotFoundError("User not found")
	}

	return &UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// UpdateProfile updates the caller's name and email
func (s *AuthService) UpdateProfile(ctx context.Context, input UpdateProfileInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewNotFoundError("User not found")
	}

	newEmail := identity.NormalizeEmail(input.Email)
	if newEmail != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, newEmail)
		if err == nil && other.ID != user.ID {
			return shared.NewConflictError("Email already registered")
		}
	}

	if err := user.SetName(input.Name); err != nil {
		return err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return shared.NewInternalError("Failed to update profile")
	}

	return nil
}

// UpdateCurrentUserPassword changes the caller's password after
// checking the current one, then invalidates outstanding sessions
func (s *AuthService) UpdateCurrentUserPassword(ctx context.Context, input UpdatePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewNotFoundError("User not found")
	}

	if !user.VerifyPassword(input.CurrentPassword) {
		return shared.NewUnauthorizedError("Current password is incorrect")
	}

	if err := user.SetPassword(input.Password); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update password", zap.Error(err))
		return shared.NewInternalError("Failed to update password")
	}

	s.invalidateSessions(ctx, user)

	s.logger.Info("Password changed", zap.String("user_id", user.ID.String()))

	return nil
}

// CheckPassword verifies a password against the caller's stored hash
func (s *AuthService) CheckPassword(ctx context.Context, input CheckPasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewNotFoundError("User not found")
	}

	if !user.VerifyPassword(input.Password) {
		return shared.NewUnauthorizedError("Incorrect password")
	}

	return nil
}

// issueToken creates and stores a fresh confirmation/reset token
func (s *AuthService) issueToken(ctx context.Context, user *identity.User) (*identity.Token, error) {
	token, err := identity.NewToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		s.logger.Error("Failed to store token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return nil, shared.NewInternalError("Failed to generate token")
	}

	return token, nil
}

// sendConfirmation emails the code; delivery failure is logged, never
// surfaced to the caller
func (s *AuthService) sendConfirmation(user *identity.User, token *identity.Token) {
	if err := s.mailer.SendConfirmationEmail(user.Name, user.Email, token.Token); err != nil {
		s.logger.Error("Failed to send confirmation email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}
}

// invalidateSessions rejects outstanding session tokens issued before now
func (s *AuthService) invalidateSessions(ctx context.Context, user *identity.User) {
	if s.blacklist == nil {
		return
	}
	if err := s.blacklist.InvalidateUserTokens(ctx, user.ID.String(), s.jwtService.GetExpiration()); err != nil {
		s.logger.Error("Failed to invalidate sessions",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}
}
