// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token issuance, and profile
// reads/updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/dbx"
	"github.com/dmitrijs2005/cptracker/internal/server/auth"
	"github.com/dmitrijs2005/cptracker/internal/server/config"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	"github.com/dmitrijs2005/cptracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// emailRegexp is the loose local@domain shape check used both to validate
// registration emails and to classify login identifiers.
var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthResult bundles the persisted user with a freshly minted bearer token.
type AuthResult struct {
	User  *models.User
	Token string
}

// ProfilePatch is a partial profile update. Nil fields are left untouched;
// a pointer to an empty string sets the field to empty. Password is applied
// only when non-nil and non-empty, and then requires OldPassword.
type ProfilePatch struct {
	Name        *string
	Username    *string
	Password    *string
	OldPassword *string
	Codeforces  *string
	Codechef    *string
	Leetcode    *string
}

// UserService provides authentication-related operations:
// - Register: validate input, create the user, mint a token
// - Login: verify credentials and mint a token
// - GetProfile / UpdateProfile: read and mutate the user record
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the signup input (first failing field wins), rejects
// duplicate usernames/emails, and creates the user with a bcrypt digest.
// The database unique constraints remain the authoritative conflict check,
// so two concurrent registrations with the same identity cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if len(username) < minUsernameLen {
		return nil, common.Wrap(common.ErrorValidation, "Username must be at least 3 characters.")
	}
	if !emailRegexp.MatchString(email) {
		return nil, common.Wrap(common.ErrorValidation, "A valid email is required.")
	}
	if len(password) < minPasswordLen {
		return nil, common.Wrap(common.ErrorValidation, "Password must be at least 6 characters.")
	}

	repo := s.repomanager.Users(s.db)

	if err := s.checkNotTaken(ctx, username, email); err != nil {
		return nil, err
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.Wrap(common.ErrorConflict, "User already exists")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: u, Token: token}, nil
}

// Login authenticates by email or username. Unknown identifiers and wrong
// passwords yield the same error on purpose, so account existence is not
// revealed.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	if identifier == "" {
		return nil, common.Wrap(common.ErrorValidation, "Email or username is required.")
	}
	if len(password) < minPasswordLen {
		return nil, common.Wrap(common.ErrorValidation, "Password must be at least 6 characters.")
	}

	repo := s.repomanager.Users(s.db)

	var user *models.User
	var err error
	if emailRegexp.MatchString(identifier) {
		user, err = repo.GetByEmail(ctx, identifier)
	} else {
		user, err = repo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.Wrap(common.ErrorUnauthorized, "Invalid credentials")
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordDigest, password) {
		return nil, common.Wrap(common.ErrorUnauthorized, "Invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}

// GetProfile returns the user record for the authenticated identity.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.Wrap(common.ErrorNotFound, "User not found")
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// UpdateProfile applies a partial patch to the user record. Changing the
// password requires proof of the current one; the stored digest is replaced
// only after that proof succeeds. The read and the write run in one
// transaction so concurrent patches cannot interleave.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch *ProfilePatch) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.Wrap(common.ErrorNotFound, "User not found")
			}
			return common.ErrorInternal
		}

		changingPassword := patch.Password != nil && *patch.Password != ""
		if changingPassword {
			if patch.OldPassword == nil || *patch.OldPassword == "" {
				return common.Wrap(common.ErrorValidation, "Old password is required to change password.")
			}
			if !auth.CheckPassword(user.PasswordDigest, *patch.OldPassword) {
				return common.Wrap(common.ErrorUnauthorized, "Old password is incorrect.")
			}
		}

		if patch.Name != nil {
			user.Name = *patch.Name
		}
		if patch.Username != nil && *patch.Username != "" && *patch.Username != user.Username {
			user.Username = *patch.Username
		}
		if changingPassword {
			digest, err := auth.HashPassword(*patch.Password)
			if err != nil {
				return fmt.Errorf("error hashing password: %w", err)
			}
			user.PasswordDigest = digest
		}
		if patch.Codeforces != nil {
			user.Codeforces = *patch.Codeforces
		}
		if patch.Codechef != nil {
			user.Codechef = *patch.Codechef
		}
		if patch.Leetcode != nil {
			user.Leetcode = *patch.Leetcode
		}

		updated, err = repo.Update(ctx, user)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrorConflict):
				return common.Wrap(common.ErrorConflict, "User already exists")
			case errors.Is(err, common.ErrorNotFound):
				return common.Wrap(common.ErrorNotFound, "User not found")
			}
			return common.ErrorInternal
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// --- helpers below ---

func (s *UserService) checkNotTaken(ctx context.Context, username, email string) error {
	repo := s.repomanager.Users(s.db)

	for _, lookup := range []func() (*models.User, error){
		func() (*models.User, error) { return repo.GetByEmail(ctx, email) },
		func() (*models.User, error) { return repo.GetByUsername(ctx, username) },
	} {
		_, err := lookup()
		if err == nil {
			return common.Wrap(common.ErrorConflict, "User already exists")
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking existing user: %w", err)
		}
	}

	return nil
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
}
