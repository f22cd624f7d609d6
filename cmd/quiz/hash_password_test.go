package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newHashPasswordCmd()
	cmd.SetIn(strings.NewReader("admin123\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--cost", "4"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	hash := strings.TrimSpace(out.String())
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")); err != nil {
		t.Fatalf("printed hash does not match password: %v", err)
	}
}

func TestReadPasswordEmpty(t *testing.T) {
	if _, err := readPassword(strings.NewReader("\n"), &bytes.Buffer{}); !errors.Is(err, errEmptyPassword) {
		t.Fatalf("expected errEmptyPassword, got %v", err)
	}
}

func TestReadPasswordWithoutNewline(t *testing.T) {
	got, err := readPassword(strings.NewReader("secret"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "secret" {
		t.Fatalf("unexpected password %q", got)
	}
}
