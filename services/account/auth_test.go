package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	auditRepo "slotwise/database/repository/audit"
	userRepo "slotwise/database/repository/user"
	"slotwise/models"
)

type stubUserStore struct {
	userRepo.UserRepository

	byEmail     map[string]*models.User
	inserted    []models.User
	lastLoginID string
}

func (r *stubUserStore) GetByEmail(email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *stubUserStore) GetByID(id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserStore) Insert(user *models.User) error {
	r.inserted = append(r.inserted, *user)
	return nil
}

func (r *stubUserStore) TouchLastLogin(id string) error {
	r.lastLoginID = id
	return nil
}

type stubAuditStore struct {
	auditRepo.AuditRepository
	entries []models.AuditLog
}

func (r *stubAuditStore) Insert(entry *models.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func newAccountFixture() (*DefaultAccountService, *stubUserStore, *stubAuditStore) {
	users := &stubUserStore{byEmail: make(map[string]*models.User)}
	audit := &stubAuditStore{}
	return &DefaultAccountService{Users: users, Audit: audit}, users, audit
}

func TestRegister(t *testing.T) {
	svc, users, audit := newAccountFixture()

	token, err := svc.Register(models.UserCreate{
		Email:    "  Owner@Example.COM ",
		Name:     "Grace Hopper",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.Len(t, users.inserted, 1)
	stored := users.inserted[0]
	assert.Equal(t, "owner@example.com", stored.Email)
	assert.Equal(t, "business_owner", stored.Role)
	assert.NotEmpty(t, stored.ID)

	// The password is stored only as a bcrypt hash.
	assert.NotContains(t, stored.PasswordHash, "s3cret-pass")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "owner@example.com", token.User.Email)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "user_registered", audit.entries[0].Action)
	assert.Equal(t, "info", audit.entries[0].Type)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, audit := newAccountFixture()
	users.byEmail["owner@example.com"] = &models.User{ID: "user-1", Email: "owner@example.com"}

	_, err := svc.Register(models.UserCreate{Email: "OWNER@example.com", Password: "whatever"})
	require.EqualError(t, err, "email already registered")
	assert.Empty(t, users.inserted)
	assert.Empty(t, audit.entries)
}

func TestLogin(t *testing.T) {
	svc, users, audit := newAccountFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users.byEmail["owner@example.com"] = &models.User{
		ID:           "user-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	token, err := svc.Login(models.UserLogin{Email: " Owner@Example.com ", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "user-1", token.User.ID)
	assert.Equal(t, "user-1", users.lastLoginID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "user_login", audit.entries[0].Action)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, users, audit := newAccountFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users.byEmail["owner@example.com"] = &models.User{
		ID:           "user-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
	}

	_, err = svc.Login(models.UserLogin{Email: "owner@example.com", Password: "wrong-pass"})
	require.EqualError(t, err, "invalid email or password")

	// Unknown accounts get the same message as a wrong password.
	_, err = svc.Login(models.UserLogin{Email: "nobody@example.com", Password: "s3cret-pass"})
	require.EqualError(t, err, "invalid email or password")

	assert.Empty(t, users.lastLoginID)
	assert.Empty(t, audit.entries)
}

func TestGetUserByID(t *testing.T) {
	svc, users, _ := newAccountFixture()
	users.byEmail["owner@example.com"] = &models.User{ID: "user-1", Email: "owner@example.com"}

	user, err := svc.GetUserByID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)

	_, err = svc.GetUserByID("missing")
	assert.EqualError(t, err, "user not found")
}
