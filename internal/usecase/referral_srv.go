package usecase

import (
	"context"
	"fmt"

	"referral-service/internal/data/entity"
	"referral-service/internal/data/repository"
	"referral-service/internal/dto/request"
	"referral-service/internal/dto/response"
	"referral-service/pkg/utils"

	"go.uber.org/zap"
)

type ReferralService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	CompleteProfile(ctx context.Context, req *request.ProfileCompletionRequest) (*response.UserResponse, error)
	GetReferredUsers(ctx context.Context, referralCode string) ([]response.UserResponse, error)
}

type referralService struct {
	userRepo repository.UserRepository
	codes    utils.CodeGenerator
	log      *zap.Logger
}

func NewReferralService(userRepo repository.UserRepository, codes utils.CodeGenerator, log *zap.Logger) ReferralService {
	return &referralService{
		userRepo: userRepo,
		codes:    codes,
		log:      log,
	}
}

func (s *referralService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email is not taken. Lookup-before-insert, no store constraint;
	// two concurrent signups with the same email can both pass this check.
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		s.log.Warn("Signup rejected, email already in use", zap.String("email", req.Email))
		return nil, ErrDuplicateEmail
	}

	// 3. Validate referrer code if supplied. Stored verbatim, nothing is
	// copied from the referrer record.
	if req.ReferrerCode != "" {
		referrer, err := s.userRepo.FindByReferralCode(ctx, req.ReferrerCode)
		if err != nil {
			s.log.Error("Failed to check referrer code", zap.Error(err), zap.String("referrer_code", req.ReferrerCode))
			return nil, fmt.Errorf("failed to check referrer code")
		}
		if referrer == nil {
			s.log.Warn("Signup rejected, unknown referrer code", zap.String("referrer_code", req.ReferrerCode))
			return nil, ErrInvalidReferralCode
		}
	}

	// 4. Generate referral code. No collision retry; uniqueness is a
	// data-model invariant, not an enforced guarantee.
	code, err := s.codes.Generate()
	if err != nil {
		s.log.Error("Failed to generate referral code", zap.Error(err))
		return nil, fmt.Errorf("failed to generate referral code")
	}

	// 5. Persist new user
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		ReferralCode: code,
		ReferrerCode: req.ReferrerCode,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User signed up",
		zap.String("email", user.Email),
		zap.String("referral_code", user.ReferralCode))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *referralService) CompleteProfile(ctx context.Context, req *request.ProfileCompletionRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile completion validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Credential check: stored email and password must match exactly
	user, err := s.userRepo.FindByEmailAndPassword(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to look up user")
	}
	if user == nil {
		s.log.Warn("Profile completion rejected, bad credentials", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	// 3. Overwrite profile fields unconditionally, even on repeat calls
	user.Name = req.Name
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address

	// 4. Promote to completed at most once. The previously-completed guard
	// is what keeps the referrer from being credited twice.
	if user.Name != "" && user.PhoneNumber != "" && user.Address != "" && !user.ProfileCompleted {
		user.ProfileCompleted = true
		s.log.Info("Profile completed", zap.String("email", user.Email))

		if user.ReferrerCode != "" {
			s.creditReferrer(ctx, user)
		}
	}

	// 5. Save the user. This write and the referrer credit above are two
	// separate writes; a lost credit with a saved user is an accepted outcome.
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.log.Error("Failed to save user", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("failed to save profile")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// creditReferrer appends the user's email to the referrer's referred list.
// Failures are logged and swallowed: the user's own completion must succeed
// even when the credit cannot be recorded.
func (s *referralService) creditReferrer(ctx context.Context, user *entity.User) {
	referrer, err := s.userRepo.FindByReferralCode(ctx, user.ReferrerCode)
	if err != nil {
		s.log.Error("Failed to look up referrer for credit",
			zap.Error(err),
			zap.String("referrer_code", user.ReferrerCode))
		return
	}
	if referrer == nil {
		s.log.Warn("Referrer code no longer resolves, credit skipped",
			zap.String("referrer_code", user.ReferrerCode),
			zap.String("email", user.Email))
		return
	}

	if referrer.ReferredUsers == nil {
		referrer.ReferredUsers = []string{}
	}
	referrer.ReferredUsers = append(referrer.ReferredUsers, user.Email)

	if err := s.userRepo.Save(ctx, referrer); err != nil {
		s.log.Error("Failed to save referrer credit",
			zap.Error(err),
			zap.String("referrer_code", user.ReferrerCode),
			zap.String("email", user.Email))
		return
	}

	s.log.Info("Referral credited",
		zap.String("email", user.Email),
		zap.String("referrer_code", user.ReferrerCode))
}

func (s *referralService) GetReferredUsers(ctx context.Context, referralCode string) ([]response.UserResponse, error) {
	referrer, err := s.userRepo.FindByReferralCode(ctx, referralCode)
	if err != nil {
		s.log.Error("Failed to look up referral code", zap.Error(err), zap.String("referral_code", referralCode))
		return nil, fmt.Errorf("failed to look up referral code")
	}
	if referrer == nil {
		s.log.Warn("Unknown referral code", zap.String("referral_code", referralCode))
		return nil, ErrInvalidReferralCode
	}

	if len(referrer.ReferredUsers) == 0 {
		return []response.UserResponse{}, nil
	}

	// Store iteration order, not the order of the referred list
	users, err := s.userRepo.FindByEmailsWhereProfileCompleted(ctx, referrer.ReferredUsers)
	if err != nil {
		s.log.Error("Failed to fetch referred users", zap.Error(err), zap.String("referral_code", referralCode))
		return nil, fmt.Errorf("failed to fetch referred users")
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	s.log.Info("Referred users fetched",
		zap.String("referral_code", referralCode),
		zap.Int("count", len(responses)))

	return responses, nil
}
