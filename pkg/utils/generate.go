package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// ReferralCodeLength is the fixed length of every referral code.
	ReferralCodeLength = 6

	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator produces referral codes. Injected into the service so tests
// can supply deterministic sequences.
type CodeGenerator interface {
	Generate() (string, error)
}

type nanoidGenerator struct{}

// NewCodeGenerator returns the default generator: 6 characters drawn
// uniformly from [A-Z0-9] using a cryptographically strong source.
// No uniqueness check is performed here; collisions are possible.
func NewCodeGenerator() CodeGenerator {
	return nanoidGenerator{}
}

func (nanoidGenerator) Generate() (string, error) {
	return gonanoid.Generate(referralCodeAlphabet, ReferralCodeLength)
}
