package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/HoursLedger/internal/calendar"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ClientService struct {
	repo   ports.ClientRepo
	clock  calendar.Clock
	logger logger.Logger
}

func NewClientService(repo ports.ClientRepo, clock calendar.Clock, logger logger.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (s *ClientService) Create(ctx context.Context, input domain.CreateClientInput) (*domain.Client, error) {
	name, email, err := normalizeProfile(input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	client := &domain.Client{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		TelegramChatID: input.TelegramChatID,
		Packages:       []domain.Package{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.logger.Info("client created",
		logger.String("client_id", client.ID),
	)

	return client, nil
}

func (s *ClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail is the client portal lookup.
func (s *ClientService) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, id string, input domain.UpdateClientInput) (*domain.Client, error) {
	name, email, err := normalizeProfile(input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	client.Name = name
	client.Email = email
	client.TelegramChatID = input.TelegramChatID
	client.UpdatedAt = s.clock.Now().UTC()

	if err = s.repo.UpdateProfile(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	s.logger.Info("client deleted", logger.String("client_id", id))
	return nil
}

func normalizeProfile(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return "", "", fmt.Errorf("%w: invalid email %q", domain.ErrValidation, email)
		}
	}

	return name, email, nil
}
