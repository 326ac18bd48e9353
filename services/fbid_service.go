package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"foodserver/repository"
)

const (
	fbidLength      = 16
	maxFBIDAttempts = 20
)

// fbidSpace is 10^16, the number of 16-digit candidates.
var fbidSpace = new(big.Int).Exp(big.NewInt(10), big.NewInt(fbidLength), nil)

// ErrFBIDExhausted is returned when every candidate in the retry budget
// collided. With 10^16 candidates this indicates store pathology, not a
// full identifier space.
var ErrFBIDExhausted = errors.New("could not generate a free fbid")

// FBIDService hands out the external user identifiers.
type FBIDService struct {
	Repo *repository.UserRepository
}

func NewFBIDService(repo *repository.UserRepository) *FBIDService {
	return &FBIDService{Repo: repo}
}

// Generate returns a 16-digit numeric identifier that did not exist
// among users at the time of the existence check. A store error during
// the check fails the call; an unverified candidate is never accepted.
func (s *FBIDService) Generate(ctx context.Context) (string, error) {
	for i := 0; i < maxFBIDAttempts; i++ {
		n, err := rand.Int(rand.Reader, fbidSpace)
		if err != nil {
			return "", err
		}
		candidate := fmt.Sprintf("%016d", n)

		exists, err := s.Repo.FBIDExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrFBIDExhausted
}
