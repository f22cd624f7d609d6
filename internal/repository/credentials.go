package repository

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

var (
	ErrEmptyEmail      = errors.New("credential email is empty")
	ErrDuplicateEmail  = errors.New("duplicate credential email")
	ErrMissingPassword = errors.New("credential has neither password nor password_hash")
)

// PasswordHasher produces one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SeedUser is one account of the users file.
// Password is accepted for local development only and is hashed on load.
type SeedUser struct {
	Email        string `toml:"email"`
	Name         string `toml:"name"`
	PasswordHash string `toml:"password_hash"`
	Password     string `toml:"password"`
}

// SeedFile is the TOML users file.
type SeedFile struct {
	Users []SeedUser `toml:"users"`
}

// DefaultSeed returns the accounts available when no users file is configured.
func DefaultSeed() []SeedUser {
	return []SeedUser{
		{Email: "admin@example.com", Name: "Administrador", Password: "admin123"},
		{Email: "user@example.com", Name: "Usuário", Password: "user123"},
	}
}

// CredentialTable is the immutable email -> credential mapping.
type CredentialTable struct {
	byEmail map[string]entities.Credential
}

// NewCredentialTable builds a table from the given credentials.
// Emails must be non-empty and unique.
func NewCredentialTable(creds []entities.Credential) (*CredentialTable, error) {
	byEmail := make(map[string]entities.Credential, len(creds))
	for _, c := range creds {
		if c.Email == "" {
			return nil, ErrEmptyEmail
		}
		if _, ok := byEmail[c.Email]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, c.Email)
		}
		byEmail[c.Email] = c
	}

	return &CredentialTable{byEmail: byEmail}, nil
}

// GetByEmail looks up a credential by exact, case-sensitive email.
func (t *CredentialTable) GetByEmail(email string) (entities.Credential, bool) {
	c, ok := t.byEmail[email]
	return c, ok
}

// Len returns the number of credentials in the table.
func (t *CredentialTable) Len() int {
	return len(t.byEmail)
}

// LoadCredentials builds the credential table from the TOML users file at path.
// An empty path or a missing file yields the default seed.
func LoadCredentials(path string, hasher PasswordHasher) (*CredentialTable, error) {
	seed, err := loadSeedFile(path)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		seed = DefaultSeed()
	}

	creds := make([]entities.Credential, 0, len(seed))
	for _, u := range seed {
		hash := u.PasswordHash
		if hash == "" {
			if u.Password == "" {
				return nil, fmt.Errorf("%w: %s", ErrMissingPassword, u.Email)
			}
			hash, err = hasher.Hash(u.Password)
			if err != nil {
				return nil, fmt.Errorf("seed %s: %w", u.Email, err)
			}
		}

		creds = append(creds, entities.Credential{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: hash,
		})
	}

	return NewCredentialTable(creds)
}

func loadSeedFile(path string) ([]SeedUser, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat users file: %w", err)
	}

	var file SeedFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode users file: %w", err)
	}
	if file.Users == nil {
		return []SeedUser{}, nil
	}

	return file.Users, nil
}
