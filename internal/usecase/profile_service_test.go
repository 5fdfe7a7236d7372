package usecase

import (
	"errors"
	"testing"

	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/infrastructure/repository/memory"
)

func TestProfileService_Register(t *testing.T) {
	service := NewProfileService(memory.NewUserRepository())

	u, err := service.Register(t.Context(), RegisterInput{
		UserID:   "user-1",
		Name:     "Asad",
		Email:    "asad@example.com",
		TeamName: "Karachi Kings Fan XI",
		Country:  "Pakistan",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if u.Points != 0 {
		t.Fatalf("new profile must start at zero points, got %d", u.Points)
	}
	if len(u.Leagues) != 2 || u.Leagues[0] != user.ScopeOverall || u.Leagues[1] != "Pakistan" {
		t.Fatalf("expected implicit overall and country memberships, got %+v", u.Leagues)
	}
	if u.WelcomeSeen {
		t.Fatalf("welcome must be unseen on a fresh profile")
	}
}

func TestProfileService_RegisterTwiceReturnsExisting(t *testing.T) {
	userRepo := memory.NewUserRepository()
	service := NewProfileService(userRepo)

	input := RegisterInput{
		UserID: "user-1", Name: "Asad", Email: "asad@example.com",
		TeamName: "Karachi Kings Fan XI", Country: "Pakistan",
	}
	if _, err := service.Register(t.Context(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if err := userRepo.IncrementPoints(t.Context(), "user-1", 150); err != nil {
		t.Fatalf("increment points: %v", err)
	}

	input.TeamName = "Different XI"
	u, err := service.Register(t.Context(), input)
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if u.Points != 150 || u.TeamName != "Karachi Kings Fan XI" {
		t.Fatalf("second register must return the stored profile untouched, got %+v", u)
	}
}

func TestProfileService_RegisterValidation(t *testing.T) {
	service := NewProfileService(memory.NewUserRepository())

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{name: "missing user id", input: RegisterInput{Name: "A", Email: "a@b.c", TeamName: "XI", Country: "India"}},
		{name: "missing name", input: RegisterInput{UserID: "u", Email: "a@b.c", TeamName: "XI", Country: "India"}},
		{name: "missing email", input: RegisterInput{UserID: "u", Name: "A", TeamName: "XI", Country: "India"}},
		{name: "missing team name", input: RegisterInput{UserID: "u", Name: "A", Email: "a@b.c", Country: "India"}},
		{name: "missing country", input: RegisterInput{UserID: "u", Name: "A", Email: "a@b.c", TeamName: "XI"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Register(t.Context(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestProfileService_MarkWelcomeSeen(t *testing.T) {
	service := NewProfileService(memory.NewUserRepository())

	if _, err := service.Register(t.Context(), RegisterInput{
		UserID: "user-1", Name: "Asad", Email: "asad@example.com",
		TeamName: "Karachi Kings Fan XI", Country: "Pakistan",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := service.MarkWelcomeSeen(t.Context(), "user-1"); err != nil {
		t.Fatalf("mark welcome seen failed: %v", err)
	}

	u, err := service.Get(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if !u.WelcomeSeen {
		t.Fatalf("welcome seen flag not persisted")
	}
}

func TestProfileService_GetUnknownUser(t *testing.T) {
	service := NewProfileService(memory.NewUserRepository())

	if _, err := service.Get(t.Context(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
