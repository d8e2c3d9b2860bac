package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/storage"
)

const sessionStorageKey = "@mini-crm/auth-session"

// DefaultDelay imita o tempo de resposta do provedor de identidade mockado.
const DefaultDelay = 650 * time.Millisecond

// Credenciais fixas do ambiente de demonstração.
const mockPassword = "123456"

var mockUser = entity.AuthUser{
	ID:        "mock-user-01",
	Name:      "Pedro SDR",
	Email:     "pedro@mini-crm.dev",
	Role:      "admin",
	AvatarURL: "https://avatar.iran.liara.run/public/49",
}

// ErrInvalidCredentials é a única mensagem de falha de login: não se distingue
// usuário desconhecido de senha errada.
var ErrInvalidCredentials = errors.New("credenciais inválidas, verifique e tente novamente")

// Service implementa o login mockado com sessão persistida na porta de
// armazenamento. Nada aqui é autenticação de verdade.
type Service struct {
	store storage.Store
	delay time.Duration
}

func NewService(store storage.Store, delay time.Duration) *Service {
	return &Service{store: store, delay: delay}
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Login confere as credenciais contra as constantes fixas e, em caso de
// sucesso, cunha um token opaco novo e persiste a sessão.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized != mockUser.Email || password != mockPassword {
		return nil, ErrInvalidCredentials
	}

	user := mockUser
	session := &entity.Session{
		Status: entity.SessionAuthenticated,
		User:   &user,
		Token:  "mock-token-" + uuid.New().String(),
	}

	if err := storage.WriteJSON(ctx, s.store, sessionStorageKey, session); err != nil {
		logrus.WithError(err).Error("auth: falha ao persistir sessão")
	}
	return session, nil
}

// Logout remove a sessão persistida.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.store.Remove(ctx, sessionStorageKey)
}

// LoadSession lê a sessão persistida, caindo para "unauthenticated" em
// qualquer dado ausente ou corrompido.
func (s *Service) LoadSession(ctx context.Context) *entity.Session {
	session := storage.ReadJSON(ctx, s.store, sessionStorageKey, entity.Session{
		Status: entity.SessionUnauthenticated,
	})
	if !session.Authenticated() {
		return &entity.Session{Status: entity.SessionUnauthenticated}
	}
	return &session
}
