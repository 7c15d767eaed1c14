package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"platepilot/internal/auth"
	"platepilot/internal/domain"

	"github.com/sirupsen/logrus"
)

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
}

// AuthService issues customer tokens against one-time phone codes.
type AuthService struct {
	codes    OTPStore
	tokens   TokenIssuer
	log      logrus.FieldLogger
	generate func() (string, error)
}

func NewAuthService(codes OTPStore, tokens TokenIssuer, logger logrus.FieldLogger) *AuthService {
	return &AuthService{
		codes:    codes,
		tokens:   tokens,
		log:      logger,
		generate: sixDigitCode,
	}
}

func (s *AuthService) WithCodeGenerator(gen func() (string, error)) *AuthService {
	s.generate = gen
	return s
}

func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizePhone(phone string) string {
	return strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
}

// RequestCode stores a fresh code for phone. Delivery over SMS happens
// outside this service.
func (s *AuthService) RequestCode(ctx context.Context, phone string) error {
	phone = normalizePhone(phone)
	if phone == "" {
		return domain.ErrInvalidPhone
	}

	code, err := s.generate()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if err := s.codes.Save(ctx, phone, code); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	s.log.WithField("phone", phone).Info("verification code issued")
	return nil
}

func (s *AuthService) VerifyCode(ctx context.Context, phone, code string) (TokenResponse, error) {
	phone = normalizePhone(phone)
	if phone == "" {
		return TokenResponse{}, domain.ErrInvalidPhone
	}

	ok, err := s.codes.Consume(ctx, phone, strings.TrimSpace(code))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("check code: %w", err)
	}
	if !ok {
		return TokenResponse{}, domain.ErrInvalidCode
	}

	principal := auth.CustomerPrincipal{UserID: "user-" + phone, Phone: phone}
	token, exp, err := s.tokens.Issue(principal)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return TokenResponse{Token: token, ExpiresAt: exp, UserID: principal.UserID}, nil
}
