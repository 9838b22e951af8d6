package accounts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/platform/password"
)

func newService() *accounts.Service {
	hasher := password.NewHasher(password.Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	return accounts.NewService(memory.NewAccountRepo(memory.NewStore()), hasher)
}

func TestSignupAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	u, err := svc.Signup(ctx, accounts.SignupInput{Username: "ana.g+cats@x", Password: "correct horse"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.ID == "" || strings.Contains(u.PasswordHash, "correct horse") || !strings.HasPrefix(u.PasswordHash, "$argon2id$") {
		t.Fatalf("unexpected user: %+v", u)
	}

	claims, err := svc.Authenticate(ctx, "ana.g+cats@x", "correct horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.UserID != u.ID || claims.Username != "ana.g+cats@x" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthenticate_SameErrorForUnknownUserAndBadPassword(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, _ = svc.Signup(ctx, accounts.SignupInput{Username: "ana", Password: "correct horse"})

	_, errWrong := svc.Authenticate(ctx, "ana", "wrong password")
	_, errUnknown := svc.Authenticate(ctx, "bob", "correct horse")

	if !errors.Is(errWrong, accounts.ErrInvalidCredentials) || !errors.Is(errUnknown, accounts.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v / %v", errWrong, errUnknown)
	}
}

func TestSignup_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	bad := []accounts.SignupInput{
		{Username: "", Password: "longenough"},
		{Username: "has space", Password: "longenough"},
		{Username: "ana!", Password: "longenough"},
		{Username: strings.Repeat("a", accounts.MaxUsernameLen+1), Password: "longenough"},
		{Username: "ana", Password: "short"},
	}
	for _, in := range bad {
		if _, err := svc.Signup(ctx, in); !errors.Is(err, accounts.ErrInvalidInput) {
			t.Fatalf("input %q: expected ErrInvalidInput, got %v", in.Username, err)
		}
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Signup(ctx, accounts.SignupInput{Username: "Ana", Password: "longenough"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, err := svc.Signup(ctx, accounts.SignupInput{Username: "ana", Password: "longenough"})
	if !errors.Is(err, accounts.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}
