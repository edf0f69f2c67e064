package mockapi

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
)

// NewInviteCode derives a 14-character invite code from the team name and a
// cryptographically secure random number.
func NewInviteCode(teamName string) (string, error) {
	n, err := secureRandInt(math.MaxInt64)
	if err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	sum := md5.Sum([]byte(teamName + "." + n.String()))
	return hex.EncodeToString(sum[:7]), nil
}

// secureRandInt returns a uniform random integer in [0, max).
func secureRandInt(limit int64) (*big.Int, error) {
	return rand.Int(rand.Reader, big.NewInt(limit))
}
