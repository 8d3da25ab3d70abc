package wire

import (
	"referral-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures the referral service routes. All three are public:
// the only credential in scope is the email+password pair checked inside
// profile completion itself.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/signup", userHandler.Signup)
		r.Post("/complete-profile", userHandler.CompleteProfile)
		r.Get("/referred/{referralCode}", userHandler.GetReferredUsers)
	})
}
