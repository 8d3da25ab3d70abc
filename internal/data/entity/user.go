package entity

import "time"

type User struct {
	ID               string    `bson:"_id"`
	Name             string    `bson:"name"`
	Email            string    `bson:"email"`
	Password         string    `bson:"password"`
	PhoneNumber      string    `bson:"phone_number,omitempty"`
	Address          string    `bson:"address,omitempty"`
	ReferralCode     string    `bson:"referral_code"`
	ReferrerCode     string    `bson:"referrer_code,omitempty"`
	ProfileCompleted bool      `bson:"profile_completed"`
	ReferredUsers    []string  `bson:"referred_users,omitempty"`
	CreatedAt        time.Time `bson:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at"`
}
