package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"micat-content-api/models"
)

func TestCreateOfficerResolvesMAC(t *testing.T) {
	s := newTestStore()

	user, err := CreateUser(s, UserInput{
		Name:  "New Officer",
		Email: "officer@moh.gov.lr",
		Role:  models.RoleMACOfficer,
		MACID: "MAC-1",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !user.Active {
		t.Fatalf("new accounts must default to active")
	}
	if user.MACID == nil || *user.MACID != "MAC-1" {
		t.Fatalf("MAC id not set")
	}
	if user.MACName == nil || *user.MACName != "Ministry of Health" {
		t.Fatalf("MAC name not resolved from reference data")
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("creation timestamp not stamped")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(DefaultAccountPassword)); err != nil {
		t.Fatalf("default password not hashed into the account: %v", err)
	}
}

func TestCreateOfficerWithoutMACFails(t *testing.T) {
	s := newTestStore()

	if _, err := CreateUser(s, UserInput{
		Name: "No MAC", Email: "nomac@moh.gov.lr", Role: models.RoleMACOfficer,
	}); !errors.Is(err, ErrMACRequired) {
		t.Fatalf("expected ErrMACRequired, got %v", err)
	}

	if _, err := CreateUser(s, UserInput{
		Name: "Bad MAC", Email: "badmac@moh.gov.lr", Role: models.RoleMACOfficer, MACID: "MAC-99",
	}); !errors.Is(err, ErrUnknownMAC) {
		t.Fatalf("expected ErrUnknownMAC, got %v", err)
	}
}

func TestCreateNonOfficerIgnoresMAC(t *testing.T) {
	s := newTestStore()

	user, err := CreateUser(s, UserInput{
		Name: "Reviewer", Email: "new.reviewer@micat.gov.lr", Role: models.RoleMICATReviewer,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.MACID != nil || user.MACName != nil {
		t.Fatalf("non-officer roles carry no affiliation")
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore()

	if _, err := CreateUser(s, UserInput{
		Name: "Dup", Email: "Alice@moh.gov.lr", Role: models.RoleMICATReviewer,
	}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := newTestStore()
	if _, err := CreateUser(s, UserInput{
		Name: "X", Email: "x@x.lr", Role: models.UserRole("superuser"),
	}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestToggleUserActive(t *testing.T) {
	s := newTestStore()

	user, err := ToggleUserActive(s, "user-alice")
	if err != nil {
		t.Fatalf("ToggleUserActive returned error: %v", err)
	}
	if user.Active {
		t.Fatalf("expected user deactivated")
	}

	// Submissions already attributed to the user are unchanged.
	sub := findByID(t, s, "sub-pending")
	if sub.SubmittedBy != "Alice" {
		t.Fatalf("deactivation must not touch submissions: %+v", sub)
	}

	user, err = ToggleUserActive(s, "user-alice")
	if err != nil {
		t.Fatalf("second toggle returned error: %v", err)
	}
	if !user.Active {
		t.Fatalf("expected user reactivated")
	}

	if _, err := ToggleUserActive(s, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindActiveUserByRole(t *testing.T) {
	s := newTestStore()

	user, err := FindActiveUserByRole(s, models.RoleMICATReviewer)
	if err != nil {
		t.Fatalf("FindActiveUserByRole returned error: %v", err)
	}
	if user.ID != "user-bob" {
		t.Fatalf("expected first active reviewer, got %s", user.ID)
	}

	// No admin exists in the fixture: explicit error, not a silent no-op.
	if _, err := FindActiveUserByRole(s, models.RoleAdmin); !errors.Is(err, ErrNoActiveRoleUser) {
		t.Fatalf("expected ErrNoActiveRoleUser, got %v", err)
	}

	// Deactivated users are skipped.
	if _, err := ToggleUserActive(s, "user-bob"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := FindActiveUserByRole(s, models.RoleMICATReviewer); !errors.Is(err, ErrNoActiveRoleUser) {
		t.Fatalf("expected ErrNoActiveRoleUser after deactivation, got %v", err)
	}

	if _, err := FindActiveUserByRole(s, models.UserRole("nope")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
