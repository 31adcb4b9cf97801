package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/store"
)

func TestUserService_Register(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())

	u, err := svc.Register(context.Background(), domain.NewUser{Username: " alice ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Register() should assign an ID")
	}
	if u.Username != "alice" {
		t.Fatalf("Username = %q; want trimmed", u.Username)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.NewUser{Username: "bob", Password: "pw"}); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if _, err := svc.Register(ctx, domain.NewUser{Username: "bob", Password: "other"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("Register() err = %v; want ErrUsernameTaken", err)
	}
}

func TestUserService_Register_BlankInput(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.NewUser{Username: "  ", Password: "pw"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("blank username err = %v; want ErrInvalidCredentials", err)
	}
	if _, err := svc.Register(ctx, domain.NewUser{Username: "carol", Password: ""}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("blank password err = %v; want ErrInvalidCredentials", err)
	}
}

func TestUserService_Get(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())

	created, err := svc.Register(context.Background(), domain.NewUser{Username: "dave", Password: "pw"})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Username != "dave" {
		t.Fatalf("Get() = %+v", got)
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Get(999) err = %v; want ErrUserNotFound", err)
	}
}
