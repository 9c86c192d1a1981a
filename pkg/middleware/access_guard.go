package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type GuardOptions struct {
	RequireAdmin  bool
	RequireIntake bool
	// Onboarding marks routes in the post-checkout flow, where a fresh
	// signup gets the verification grace window instead of a hard redirect.
	Onboarding bool
}

// AccessGuard gates a route group on the effective subscription, intake and
// onboarding state. It runs after JWTAuthMiddleware.
func AccessGuard(guard services.GuardServiceInterface, accountService services.AccountServiceInterface, opts GuardOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := uuid.Parse(c.GetString("user_id"))
		if err != nil {
			respondGuard(c, services.GuardDecision{
				Action:     services.GuardRedirect,
				RedirectTo: "/login",
			})
			return
		}

		// Role-check errors read as "not an admin".
		isAdmin, err := accountService.IsAdmin(c.Request.Context(), accountID)
		if err != nil {
			isAdmin = false
		}

		in := guard.BuildInput(c.Request.Context(), accountID, isAdmin)
		in.RequireAdmin = opts.RequireAdmin
		in.RequireIntake = opts.RequireIntake
		in.OnboardingRoute = opts.Onboarding
		in.FreshSignup = c.Query("fresh_signup") == "1" || c.GetHeader("X-Fresh-Signup") == "1"
		in.ActiveIdentityID = c.GetHeader("X-Active-Identity")
		in.Path = c.Request.URL.Path

		decision := guard.Evaluate(c.Request.Context(), in)

		if decision.Action == services.GuardVerifying {
			// Bridge the lag between payment confirmation and the
			// subscription row becoming queryable.
			if guard.VerifySignupAccess(c.Request.Context(), accountID) {
				in.HasAccess = true
				decision = guard.Evaluate(c.Request.Context(), in)
			} else {
				decision = services.GuardDecision{
					Action:     services.GuardRedirect,
					RedirectTo: "/access-expired",
				}
			}
		}

		if decision.Action == services.GuardAllow {
			c.Next()
			return
		}
		respondGuard(c, decision)
	}
}

func respondGuard(c *gin.Context, decision services.GuardDecision) {
	code := http.StatusForbidden
	if strings.HasPrefix(decision.RedirectTo, "/login") {
		code = http.StatusUnauthorized
	}
	c.JSON(code, utils.APIResponse{
		Status:  "error",
		Code:    code,
		Message: "Access denied",
		Data:    decision,
	})
	c.Abort()
}
