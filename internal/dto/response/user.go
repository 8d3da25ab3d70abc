package response

import "referral-service/internal/data/entity"

type UserResponse struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	Address          string `json:"address,omitempty"`
	ReferralCode     string `json:"referral_code"`
	ReferrerCode     string `json:"referrer_code,omitempty"`
	ProfileCompleted bool   `json:"profile_completed"`
}

// UserToResponse maps the stored entity to its API shape, dropping the
// password and the referred-users bookkeeping list.
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		Address:          user.Address,
		ReferralCode:     user.ReferralCode,
		ReferrerCode:     user.ReferrerCode,
		ProfileCompleted: user.ProfileCompleted,
	}
}
