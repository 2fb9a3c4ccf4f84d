package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"canvas-store/internal/domain"
	tokenrepo "canvas-store/internal/repository/token"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*domain.User{}, byID: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	u.ID = "user-" + u.Email
	u.CreatedAt = time.Now()
	r.byEmail[u.Email] = &u
	r.byID[u.ID] = &u
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) UpdateName(_ context.Context, id, name string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name = name
	return u, nil
}

type memTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: map[string]tokenrepo.Token{}}
}

func (r *memTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := r.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	r.tokens[t.Token] = t
	return nil
}

func (r *memTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *memTokenRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func newTestAccountService() (*Service, *memUserRepo, *memTokenRepo) {
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	return New(users, tokens), users, tokens
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, users, _ := newTestAccountService()

	u, err := svc.Register(context.Background(), "  Ada@Example.COM ", "correct horse", "Ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "correct horse" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if _, ok := users.byEmail["ada@example.com"]; !ok {
		t.Fatalf("user not persisted under normalized email")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAccountService()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "correct horse"},
		{"no at sign", "not-an-email", "correct horse"},
		{"short password", "ada@example.com", "short"},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.email, tc.password, "Ada"); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAccountService()

	if _, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, _, tokens := newTestAccountService()

	if _, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, access, refresh, err := svc.Login(context.Background(), "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	if access == "" || refresh == "" || access == refresh {
		t.Fatalf("expected two distinct tokens")
	}
	if len(tokens.tokens) != 2 {
		t.Fatalf("expected 2 persisted tokens, got %d", len(tokens.tokens))
	}

	// Only digests reach the store; the issued values must not appear there.
	if _, ok := tokens.tokens[access]; ok {
		t.Fatalf("access token persisted in plaintext")
	}
	if _, ok := tokens.tokens[refresh]; ok {
		t.Fatalf("refresh token persisted in plaintext")
	}
	if tokens.tokens[hashToken(access)].Kind != "access" || tokens.tokens[hashToken(refresh)].Kind != "refresh" {
		t.Fatalf("token kinds not recorded under hashed keys")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAccountService()

	if _, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unknown email and wrong password must look identical to the caller.
	if _, _, _, err := svc.Login(context.Background(), "ghost@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "ada@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLookupByToken(t *testing.T) {
	svc, _, tokens := newTestAccountService()

	reg, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, access, refresh, err := svc.Login(context.Background(), "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := svc.LookupByToken(context.Background(), access)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("token resolved to wrong user")
	}

	// Refresh tokens are not valid for authentication.
	if _, err := svc.LookupByToken(context.Background(), refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for refresh kind, got %v", err)
	}
	if _, err := svc.LookupByToken(context.Background(), "bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	// Expired tokens are rejected and removed.
	expired := tokens.tokens[hashToken(access)]
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	tokens.tokens[hashToken(access)] = expired
	if _, err := svc.LookupByToken(context.Background(), access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for expired token, got %v", err)
	}
	if _, ok := tokens.tokens[hashToken(access)]; ok {
		t.Fatalf("expired token should be deleted")
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestAccountService()

	reg, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := svc.UpdateProfile(context.Background(), reg.ID, "  Ada Lovelace  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Ada Lovelace" {
		t.Fatalf("name not trimmed and updated: %q", u.Name)
	}

	if _, err := svc.UpdateProfile(context.Background(), reg.ID, "   "); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}
