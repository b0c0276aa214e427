package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"micat-content-api/models"
	"micat-content-api/store"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already in use")
	ErrInvalidRole      = errors.New("unknown role")
	ErrMACRequired      = errors.New("mac_officer accounts require a MAC")
	ErrUnknownMAC       = errors.New("unknown MAC")
	ErrNoActiveRoleUser = errors.New("no active user with requested role")
)

// UserInput is the admin-supplied payload for account creation.
type UserInput struct {
	Name     string
	Email    string
	Role     models.UserRole
	MACID    string
	Password string
}

// Password newly created accounts fall back to when the admin leaves the
// field blank.
const DefaultAccountPassword = "ChangeMe@123"

// CreateUser creates an active account. Officer accounts must name a known
// MAC; its display name is resolved from the reference data. Other roles
// carry no affiliation.
func CreateUser(s *store.Store, in UserInput) (models.User, error) {
	if !in.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	password := in.Password
	if password == "" {
		password = DefaultAccountPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Role:         in.Role,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now(),
	}

	err = s.Update(func(st *store.State) error {
		for _, u := range st.Users {
			if strings.EqualFold(u.Email, user.Email) {
				return ErrEmailTaken
			}
		}

		if in.Role == models.RoleMACOfficer {
			if strings.TrimSpace(in.MACID) == "" {
				return ErrMACRequired
			}
			mac, ok := findMAC(st.MACs, in.MACID)
			if !ok {
				return ErrUnknownMAC
			}
			user.MACID = &mac.ID
			user.MACName = &mac.Name
		}

		st.Users = append(st.Users, user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ToggleUserActive flips the active flag. Nothing cascades: existing
// submissions keep their attribution and an open session survives until the
// auth layer re-checks the account.
func ToggleUserActive(s *store.Store, userID string) (models.User, error) {
	var updated models.User
	err := s.Update(func(st *store.State) error {
		for i := range st.Users {
			if st.Users[i].ID == userID {
				st.Users[i].Active = !st.Users[i].Active
				updated = st.Users[i]
				return nil
			}
		}
		return ErrUserNotFound
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// FindActiveUserByRole returns the first active user holding the role; the
// demo role switch reuses whatever account it finds. A miss is an explicit
// error rather than a silent no-op.
func FindActiveUserByRole(s *store.Store, role models.UserRole) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	var found *models.User
	s.View(func(st store.State) {
		for i := range st.Users {
			if st.Users[i].Role == role && st.Users[i].Active {
				u := st.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return models.User{}, ErrNoActiveRoleUser
	}
	return *found, nil
}

// FindUserByEmail looks an account up for login.
func FindUserByEmail(s *store.Store, email string) (models.User, error) {
	var found *models.User
	s.View(func(st store.State) {
		for i := range st.Users {
			if strings.EqualFold(st.Users[i].Email, email) {
				u := st.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return models.User{}, ErrUserNotFound
	}
	return *found, nil
}

// FindUserByID resolves the authenticated actor from a token claim.
func FindUserByID(s *store.Store, id string) (models.User, error) {
	var found *models.User
	s.View(func(st store.State) {
		for i := range st.Users {
			if st.Users[i].ID == id {
				u := st.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return models.User{}, ErrUserNotFound
	}
	return *found, nil
}

func findMAC(macs []models.MAC, id string) (models.MAC, bool) {
	for _, mac := range macs {
		if mac.ID == id {
			return mac, true
		}
	}
	return models.MAC{}, false
}
