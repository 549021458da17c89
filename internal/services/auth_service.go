package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	mailer      domain.Mailer
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailer domain.Mailer,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailer:      mailer,
	}
}

// Register implements domain.AuthService. No identity is created yet; the
// registration payload travels inside the verify token until activation.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return "", domain.Conflict("Already have an account with this email")
	}

	// the plaintext password never leaves this step
	hash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	verifyToken, err := s.tokenSvc.Issue(domain.PurposeRegister, domain.Claims{
		"name":     input.Name,
		"email":    strings.ToLower(input.Email),
		"phone":    input.Phone,
		"password": hash,
		"gender":   input.Gender,
		"address":  input.Address,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue verify token: %w", err)
	}

	if err := s.mailer.Send(ctx, input.Email, "Account activation link.", verifyToken); err != nil {
		log.Printf("MAIL_SEND_FAILED: kind=verify to=%s error=%v", input.Email, err)
	}

	return verifyToken, nil
}

// Activate implements domain.AuthService. Replaying a verify token after
// the identity exists fails with Conflict, so no duplicates are created.
func (s *AuthServiceImpl) Activate(ctx context.Context, verifyToken string) (*domain.User, error) {
	claims, err := s.tokenSvc.Verify(domain.PurposeRegister, verifyToken)
	if err != nil {
		return nil, err
	}

	email := claimString(claims, "email")
	if email == "" {
		return nil, domain.ErrTokenInvalid
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, domain.Conflict("User already exists.")
	}

	now := time.Now()
	user := &domain.User{
		ID:           bson.NewObjectID(),
		Name:         claimString(claims, "name"),
		Email:        email,
		Phone:        claimString(claims, "phone"),
		PasswordHash: claimString(claims, "password"),
		Gender:       claimString(claims, "gender"),
		Address:      claimString(claims, "address"),
		Role:         domain.RoleUser,
		Active:       true,
		WishList:     []bson.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login implements domain.AuthService. The ban flag is checked before the
// password so a banned identity is always refused with Forbidden.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return nil, domain.BadRequest("User not found. Please register.")
	}

	if user.IsBanned {
		return nil, domain.Forbidden("Your account is banned. Please contact with admin.")
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.BadRequest("Wrong password. Please try again.")
	}

	accessToken, err := s.tokenSvc.Issue(domain.PurposeAccess, domain.Claims{
		"email": user.Email,
		"role":  user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.Issue(domain.PurposeRefresh, domain.Claims{
		"email": user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh implements domain.AuthService. Only the access token is
// re-issued; the refresh token is never rotated.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenSvc.Verify(domain.PurposeRefresh, refreshToken)
	if err != nil {
		return "", err
	}

	email := claimString(claims, "email")
	if email == "" {
		return "", domain.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return "", domain.Unauthenticated("User not found.")
	}

	accessToken, err := s.tokenSvc.Issue(domain.PurposeAccess, domain.Claims{
		"email": user.Email,
		"role":  user.Role,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return accessToken, nil
}

// ForgotPassword implements domain.AuthService. An unknown email returns
// NotFound, matching the existing observable behavior.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return "", domain.NotFound("Couldn't find any user with this email.")
	}

	resetToken, err := s.tokenSvc.Issue(domain.PurposeReset, domain.Claims{
		"email": user.Email,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := s.mailer.Send(ctx, user.Email, "Password reset link.", resetToken); err != nil {
		log.Printf("MAIL_SEND_FAILED: kind=reset to=%s error=%v", user.Email, err)
	}

	return resetToken, nil
}

// ResetPassword implements domain.AuthService. Does not log the user in.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokenSvc.Verify(domain.PurposeReset, resetToken)
	if err != nil {
		return err
	}

	email := claimString(claims, "email")
	if email == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return domain.NotFound("Couldn't find any user with this email.")
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.UpdateByID(ctx, user.ID, domain.Filter{"password": hash}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ResolveIdentity implements domain.AuthService: access token in, live
// identity out. A missing or banned identity fails closed.
func (s *AuthServiceImpl) ResolveIdentity(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokenSvc.Verify(domain.PurposeAccess, accessToken)
	if err != nil {
		return nil, err
	}

	email := claimString(claims, "email")
	if email == "" {
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil || user.IsBanned {
		return nil, domain.Unauthenticated("Please login.")
	}

	return user, nil
}

func claimString(claims domain.Claims, key string) string {
	v, _ := claims[key].(string)
	return v
}
