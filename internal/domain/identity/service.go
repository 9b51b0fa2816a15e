package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
	auth Authenticator
}

func NewService(repo Repository, auth Authenticator) *Service {
	return &Service{repo: repo, auth: auth}
}

// Resolve maps a chat identity to its account. ErrNotLinked is a normal
// outcome; any other error is a backend failure.
func (s *Service) Resolve(ctx context.Context, telegramID int64) (string, error) {
	if telegramID == 0 {
		return "", ErrInvalidTelegramID
	}
	return s.repo.GetUserID(ctx, telegramID)
}

func (s *Service) Check(ctx context.Context, telegramID int64) (string, bool, error) {
	userID, err := s.Resolve(ctx, telegramID)
	if err != nil {
		if errors.Is(err, ErrNotLinked) {
			return "", false, nil
		}
		return "", false, err
	}
	return userID, true, nil
}

// Link authenticates (or registers) the account and only then points the
// chat identity at it, replacing any previous link.
func (s *Service) Link(ctx context.Context, input LinkInput) (string, error) {
	if input.TelegramID == 0 {
		return "", ErrInvalidTelegramID
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return "", ErrMissingCredentials
	}

	var (
		userID string
		err    error
	)
	switch Mode(strings.ToUpper(string(input.Mode))) {
	case ModeLogin:
		userID, err = s.auth.SignIn(ctx, email, input.Password)
	case ModeRegister:
		userID, err = s.auth.SignUp(ctx, email, input.Password)
	default:
		return "", ErrInvalidMode
	}
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", ErrRegistrationFailed
	}

	conn := Connection{TelegramID: input.TelegramID, UserID: userID}
	if err := s.repo.UpsertConnection(ctx, &conn); err != nil {
		return "", fmt.Errorf("link telegram: %w", err)
	}
	return userID, nil
}
