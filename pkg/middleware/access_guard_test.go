package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/services"
)

type stubGuardService struct {
	input    services.GuardInput
	verified bool
	verifies int
}

func (s *stubGuardService) Evaluate(ctx context.Context, in services.GuardInput) services.GuardDecision {
	return services.EvaluateGuard(in)
}

func (s *stubGuardService) VerifySignupAccess(ctx context.Context, accountID uuid.UUID) bool {
	s.verifies++
	return s.verified
}

func (s *stubGuardService) BuildInput(ctx context.Context, accountID uuid.UUID, isAdmin bool) services.GuardInput {
	in := s.input
	in.Authenticated = true
	in.IdentityID = accountID.String()
	in.IsAdmin = isAdmin
	return in
}

type stubAccountService struct {
	admin bool
}

func (s *stubAccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error) {
	return nil, nil
}
func (s *stubAccountService) CreateAccount(request request_models.SignUpRequest) error { return nil }
func (s *stubAccountService) ForgotPassword(ctx context.Context, email string) error   { return nil }
func (s *stubAccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return nil
}
func (s *stubAccountService) IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return s.admin, nil
}

func guardedRequest(t *testing.T, guard *stubGuardService, account *stubAccountService, opts GuardOptions, target string, header map[string]string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if authed {
			c.Set("user_id", uuid.New().String())
		}
	})
	r.Use(AccessGuard(guard, account, opts))
	r.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccessGuard_MissingIdentityGets401(t *testing.T) {
	w := guardedRequest(t, &stubGuardService{}, &stubAccountService{}, GuardOptions{}, "/members/chat", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"/login"`)
}

func TestAccessGuard_AllowsWithAccess(t *testing.T) {
	guard := &stubGuardService{input: services.GuardInput{HasAccess: true}}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{}, "/members/chat", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessGuard_NoAccessGets403WithRedirect(t *testing.T) {
	w := guardedRequest(t, &stubGuardService{}, &stubAccountService{}, GuardOptions{}, "/members/chat", nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/access-expired")
}

func TestAccessGuard_NonAdminOnAdminRoute(t *testing.T) {
	guard := &stubGuardService{input: services.GuardInput{HasAccess: true}}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{RequireAdmin: true}, "/admin/dashboard", nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/dashboard")
}

func TestAccessGuard_AdminPasses(t *testing.T) {
	w := guardedRequest(t, &stubGuardService{}, &stubAccountService{admin: true}, GuardOptions{RequireAdmin: true}, "/admin/dashboard", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessGuard_IdentityMismatchHeaderGets401(t *testing.T) {
	guard := &stubGuardService{input: services.GuardInput{HasAccess: true}}
	headers := map[string]string{"X-Active-Identity": uuid.New().String()}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{}, "/members/chat", headers, true)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessGuard_FreshSignupVerificationSucceeds(t *testing.T) {
	guard := &stubGuardService{verified: true}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{Onboarding: true}, "/onboarding/intake?fresh_signup=1", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, guard.verifies)
}

func TestAccessGuard_FreshSignupVerificationExhausted(t *testing.T) {
	guard := &stubGuardService{verified: false}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{Onboarding: true}, "/onboarding/intake?fresh_signup=1", nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/access-expired")
}

func TestAccessGuard_FreshSignupHeaderAlsoTriggersVerification(t *testing.T) {
	guard := &stubGuardService{verified: true}
	headers := map[string]string{"X-Fresh-Signup": "1"}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{Onboarding: true}, "/onboarding/intake", headers, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, guard.verifies)
}

func TestAccessGuard_IntakeRedirect(t *testing.T) {
	guard := &stubGuardService{input: services.GuardInput{HasAccess: true, ProfileLoaded: true}}

	w := guardedRequest(t, guard, &stubAccountService{}, GuardOptions{RequireIntake: true}, "/members/chat", nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/intake")
}
