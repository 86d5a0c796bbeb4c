package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/repository"
)

// ErrInvalidTeamMember is returned when a team member fails business validation.
var ErrInvalidTeamMember = errors.New("invalid team member")

// TeamService defines the business logic for the team page.
type TeamService interface {
	List(ctx context.Context) ([]*model.TeamMember, error)
	Create(ctx context.Context, m *model.TeamMember) error
	Update(ctx context.Context, m *model.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type teamServiceImpl struct {
	repo repository.TeamRepository
}

// NewTeamService creates a TeamService backed by the given repository.
func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamServiceImpl{repo: repo}
}

func (s *teamServiceImpl) List(ctx context.Context) ([]*model.TeamMember, error) {
	return s.repo.List(ctx)
}

func validateTeamMember(m *model.TeamMember) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Title = strings.TrimSpace(m.Title)
	if m.Name == "" || m.Title == "" {
		return ErrInvalidTeamMember
	}
	return nil
}

func (s *teamServiceImpl) Create(ctx context.Context, m *model.TeamMember) error {
	if err := validateTeamMember(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

func (s *teamServiceImpl) Update(ctx context.Context, m *model.TeamMember) error {
	if err := validateTeamMember(m); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *teamServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
