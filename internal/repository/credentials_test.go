package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func TestLoadCredentialsDefaultSeed(t *testing.T) {
	table, err := LoadCredentials(filepath.Join(t.TempDir(), "users.toml"), fakeHasher{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 default accounts, got %d", table.Len())
	}

	admin, ok := table.GetByEmail("admin@example.com")
	if !ok {
		t.Fatalf("admin account missing")
	}
	if admin.PasswordHash != "hashed:admin123" {
		t.Fatalf("default password not hashed: %q", admin.PasswordHash)
	}
	if _, ok := table.GetByEmail("ADMIN@example.com"); ok {
		t.Fatalf("email lookup must be case-sensitive")
	}
}

func TestLoadCredentialsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.toml")
	content := `
[[users]]
email = "teacher@example.com"
name = "Teacher"
password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[[users]]
email = "dev@example.com"
name = "Dev"
password = "devpass"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := LoadCredentials(path, fakeHasher{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 accounts, got %d", table.Len())
	}
	if _, ok := table.GetByEmail("admin@example.com"); ok {
		t.Fatalf("file seed must replace the default seed")
	}

	teacher, _ := table.GetByEmail("teacher@example.com")
	if teacher.PasswordHash != "$2a$10$abcdefghijklmnopqrstuv" || teacher.Name != "Teacher" {
		t.Fatalf("unexpected credential: %+v", teacher)
	}
	dev, _ := table.GetByEmail("dev@example.com")
	if dev.PasswordHash != "hashed:devpass" {
		t.Fatalf("plaintext password not hashed: %q", dev.PasswordHash)
	}
}

func TestLoadCredentialsRejectsBadFiles(t *testing.T) {
	cases := map[string]struct {
		content string
		want    error
	}{
		"no password": {
			content: "[[users]]\nemail = \"a@example.com\"\nname = \"A\"\n",
			want:    ErrMissingPassword,
		},
		"duplicate": {
			content: "[[users]]\nemail = \"a@example.com\"\npassword = \"x\"\n[[users]]\nemail = \"a@example.com\"\npassword = \"y\"\n",
			want:    ErrDuplicateEmail,
		},
		"empty email": {
			content: "[[users]]\nname = \"A\"\npassword = \"x\"\n",
			want:    ErrEmptyEmail,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadCredentials(path, fakeHasher{}); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadCredentialsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.toml")
	if err := os.WriteFile(path, []byte("[[users]\nemail ="), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCredentials(path, fakeHasher{}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewCredentialTableCopiesInput(t *testing.T) {
	creds := []entities.Credential{{Email: "a@example.com", Name: "A", PasswordHash: "h"}}
	table, err := NewCredentialTable(creds)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	creds[0].Name = "changed"
	got, _ := table.GetByEmail("a@example.com")
	if got.Name != "A" {
		t.Fatalf("table must not share state with its input, got %q", got.Name)
	}
}
