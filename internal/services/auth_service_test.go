package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/mocks"
)

func newAuthServiceForTest() (domain.AuthService, *mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockTokenService, *mocks.MockMailer) {
	userRepo := mocks.NewMockUserRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	mailer := mocks.NewMockMailer()
	svc := NewAuthService(userRepo, passwordSvc, tokenSvc, mailer)
	return svc, userRepo, passwordSvc, tokenSvc, mailer
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	return domain.StatusOf(err)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("issues verify token with hashed password", func(t *testing.T) {
		svc, _, _, tokenSvc, mailer := newAuthServiceForTest()

		var issued domain.Claims
		tokenSvc.IssueFunc = func(purpose domain.TokenPurpose, claims domain.Claims) (string, error) {
			if purpose != domain.PurposeRegister {
				t.Errorf("expected register purpose, got %q", purpose)
			}
			issued = claims
			return "verify_token", nil
		}

		token, err := svc.Register(context.Background(), domain.RegisterInput{
			Name:     "Asha",
			Email:    "Asha@Example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "verify_token" {
			t.Errorf("got token %q", token)
		}
		if issued["email"] != "asha@example.com" {
			t.Errorf("email not lowercased in claims: %v", issued["email"])
		}
		if issued["password"] != "hashed_secret123" {
			t.Errorf("claims carry the wrong password value: %v", issued["password"])
		}
		if len(mailer.Sent) != 1 || mailer.Sent[0].Token != "verify_token" {
			t.Errorf("verify mail not sent: %+v", mailer.Sent)
		}
	})

	t.Run("conflict when email already registered", func(t *testing.T) {
		svc, userRepo, _, _, _ := newAuthServiceForTest()
		userRepo.ExistsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
			return true, nil
		}

		_, err := svc.Register(context.Background(), domain.RegisterInput{Email: "a@b.com", Password: "x"})
		if statusOf(t, err) != http.StatusConflict {
			t.Errorf("expected 409, got %d", domain.StatusOf(err))
		}
	})

	t.Run("mailer failure does not fail registration", func(t *testing.T) {
		svc, _, _, _, mailer := newAuthServiceForTest()
		mailer.SendFunc = func(ctx context.Context, to, subject, token string) error {
			return errors.New("smtp down")
		}

		if _, err := svc.Register(context.Background(), domain.RegisterInput{Email: "a@b.com", Password: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthService_Activate(t *testing.T) {
	claims := domain.Claims{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hashed_secret123",
	}

	t.Run("creates the account from token claims", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return claims, nil
		}

		var created *domain.User
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		}

		user, err := svc.Activate(context.Background(), "verify_token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || user != created {
			t.Fatal("user was not persisted")
		}
		if user.Role != domain.RoleUser || !user.Active {
			t.Errorf("new account has wrong defaults: role=%q active=%v", user.Role, user.Active)
		}
		if user.PasswordHash != "hashed_secret123" {
			t.Errorf("password hash not carried over: %q", user.PasswordHash)
		}
		if user.WishList == nil {
			t.Error("wishlist should be initialized empty")
		}
	})

	t.Run("replayed token conflicts once the account exists", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return claims, nil
		}
		userRepo.ExistsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
			return true, nil
		}

		_, err := svc.Activate(context.Background(), "verify_token")
		if statusOf(t, err) != http.StatusConflict {
			t.Errorf("expected 409, got %d", domain.StatusOf(err))
		}
	})

	t.Run("expired token is unauthenticated", func(t *testing.T) {
		svc, _, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return nil, domain.ErrTokenExpired
		}

		_, err := svc.Activate(context.Background(), "old_token")
		if statusOf(t, err) != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", domain.StatusOf(err))
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	account := func() *domain.User {
		return &domain.User{
			ID:           bson.NewObjectID(),
			Email:        "asha@example.com",
			PasswordHash: "hashed_secret123",
			Role:         domain.RoleUser,
			Active:       true,
		}
	}

	t.Run("issues access and refresh tokens", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return account(), nil
		}

		purposes := map[domain.TokenPurpose]domain.Claims{}
		tokenSvc.IssueFunc = func(purpose domain.TokenPurpose, claims domain.Claims) (string, error) {
			purposes[purpose] = claims
			return "tok_" + string(purpose), nil
		}

		result, err := svc.Login(context.Background(), "asha@example.com", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AccessToken != "tok_access" || result.RefreshToken != "tok_refresh" {
			t.Errorf("wrong tokens: %+v", result)
		}
		if purposes[domain.PurposeAccess]["role"] != domain.RoleUser {
			t.Errorf("access claims missing role: %v", purposes[domain.PurposeAccess])
		}
		if _, hasRole := purposes[domain.PurposeRefresh]["role"]; hasRole {
			t.Error("refresh claims must not carry the role")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _, _, _, _ := newAuthServiceForTest()

		_, err := svc.Login(context.Background(), "nobody@example.com", "x")
		if statusOf(t, err) != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", domain.StatusOf(err))
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _, _, _ := newAuthServiceForTest()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return account(), nil
		}

		_, err := svc.Login(context.Background(), "asha@example.com", "nope")
		if statusOf(t, err) != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", domain.StatusOf(err))
		}
	})

	t.Run("banned account is refused even with the right password", func(t *testing.T) {
		svc, userRepo, passwordSvc, _, _ := newAuthServiceForTest()
		banned := account()
		banned.IsBanned = true
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return banned, nil
		}
		passwordSvc.VerifyFunc = func(hashedPassword, password string) bool {
			t.Error("password must not be checked for a banned account")
			return true
		}

		_, err := svc.Login(context.Background(), "asha@example.com", "secret123")
		if statusOf(t, err) != http.StatusForbidden {
			t.Errorf("expected 403, got %d", domain.StatusOf(err))
		}
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("re-issues only the access token", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			if purpose != domain.PurposeRefresh {
				t.Errorf("expected refresh purpose, got %q", purpose)
			}
			return domain.Claims{"email": "asha@example.com"}, nil
		}
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, Role: domain.RoleSeller}, nil
		}

		var issuedPurpose domain.TokenPurpose
		tokenSvc.IssueFunc = func(purpose domain.TokenPurpose, claims domain.Claims) (string, error) {
			issuedPurpose = purpose
			return "fresh_access", nil
		}

		token, err := svc.Refresh(context.Background(), "refresh_token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "fresh_access" || issuedPurpose != domain.PurposeAccess {
			t.Errorf("got token=%q purpose=%q", token, issuedPurpose)
		}
	})

	t.Run("deleted account cannot refresh", func(t *testing.T) {
		svc, _, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return domain.Claims{"email": "gone@example.com"}, nil
		}

		_, err := svc.Refresh(context.Background(), "refresh_token")
		if statusOf(t, err) != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", domain.StatusOf(err))
		}
	})

	t.Run("access token is rejected as refresh token", func(t *testing.T) {
		svc, _, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return nil, domain.ErrTokenInvalid
		}

		if _, err := svc.Refresh(context.Background(), "access_token"); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("expected ErrTokenInvalid, got %v", err)
		}
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	t.Run("forgot password issues reset token and mail", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, mailer := newAuthServiceForTest()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: bson.NewObjectID(), Email: email}, nil
		}
		tokenSvc.IssueFunc = func(purpose domain.TokenPurpose, claims domain.Claims) (string, error) {
			if purpose != domain.PurposeReset {
				t.Errorf("expected reset purpose, got %q", purpose)
			}
			return "reset_token", nil
		}

		token, err := svc.ForgotPassword(context.Background(), "asha@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "reset_token" {
			t.Errorf("got token %q", token)
		}
		if len(mailer.Sent) != 1 {
			t.Errorf("reset mail not sent: %+v", mailer.Sent)
		}
	})

	t.Run("forgot password for unknown email", func(t *testing.T) {
		svc, _, _, _, _ := newAuthServiceForTest()

		_, err := svc.ForgotPassword(context.Background(), "nobody@example.com")
		if statusOf(t, err) != http.StatusNotFound {
			t.Errorf("expected 404, got %d", domain.StatusOf(err))
		}
	})

	t.Run("reset stores a new hash", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		id := bson.NewObjectID()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return domain.Claims{"email": "asha@example.com"}, nil
		}
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: id, Email: email}, nil
		}

		var set domain.Filter
		userRepo.UpdateByIDFunc = func(ctx context.Context, uid bson.ObjectID, s domain.Filter) (*domain.User, error) {
			if uid != id {
				t.Errorf("updated wrong account: %s", uid.Hex())
			}
			set = s
			return &domain.User{ID: id}, nil
		}

		if err := svc.ResetPassword(context.Background(), "reset_token", "newsecret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if set["password"] != "hashed_newsecret" {
			t.Errorf("stored wrong hash: %v", set["password"])
		}
	})

	t.Run("expired reset token", func(t *testing.T) {
		svc, _, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return nil, domain.ErrTokenExpired
		}

		err := svc.ResetPassword(context.Background(), "stale", "newsecret")
		if statusOf(t, err) != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", domain.StatusOf(err))
		}
	})
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	t.Run("valid token resolves the account", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			if purpose != domain.PurposeAccess {
				t.Errorf("expected access purpose, got %q", purpose)
			}
			return domain.Claims{"email": "asha@example.com"}, nil
		}
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, Role: domain.RoleUser}, nil
		}

		me, err := svc.ResolveIdentity(context.Background(), "access_token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if me.Email != "asha@example.com" {
			t.Errorf("resolved wrong account: %q", me.Email)
		}
	})

	t.Run("banned account fails closed", func(t *testing.T) {
		svc, userRepo, _, tokenSvc, _ := newAuthServiceForTest()
		tokenSvc.VerifyFunc = func(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
			return domain.Claims{"email": "asha@example.com"}, nil
		}
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, IsBanned: true}, nil
		}

		_, err := svc.ResolveIdentity(context.Background(), "access_token")
		if statusOf(t, err) != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", domain.StatusOf(err))
		}
	})
}
