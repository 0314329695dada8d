//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", user.RoleCustomer, b.Now)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "staff",
				mutate: func(b *builder.UserBuilder) { b.WithRole("staff") },
			},
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("email is normalized", func(t *testing.T) {
		email, err := user.NewEmail("  Someone@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "someone@example.com", email.Value())
	})

	t.Run("staff roles", func(t *testing.T) {
		assert.False(t, user.RoleCustomer.IsStaff())
		assert.True(t, user.RoleStaff.IsStaff())
		assert.True(t, user.RoleAdmin.IsStaff())
	})
}

func TestCredentials(t *testing.T) {
	_, err := user.NewCredentials("buyer@example.com", "short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewCredentials("nope", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	creds, err := user.NewCredentials("buyer@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", creds.Email().Value())
}

func TestProfile(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new profile defaults the country", func(t *testing.T) {
		p, err := user.NewProfile(uuid.New(), " Ada ", "Wong", now)
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.FirstName())
		assert.Equal(t, user.DefaultCountry, p.Fields().Country)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		p, err := user.NewProfile(uuid.New(), "Ada", "Wong", now)
		require.NoError(t, err)

		later := now.Add(time.Hour)
		f := p.Fields()
		f.City = " Kowloon "
		f.Newsletter = true
		f.Country = ""
		require.NoError(t, p.Update(f, later))

		got := p.Fields()
		assert.Equal(t, "Kowloon", got.City)
		assert.True(t, got.Newsletter)
		assert.Equal(t, user.DefaultCountry, got.Country)
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("limits", func(t *testing.T) {
		p, err := user.NewProfile(uuid.New(), "Ada", "Wong", now)
		require.NoError(t, err)

		f := p.Fields()
		f.Phone = strings.Repeat("1", user.MaxPhoneLength+1)
		assert.ErrorIs(t, p.Update(f, now), user.ErrPhoneTooLong)

		_, err = user.NewProfile(uuid.New(), strings.Repeat("a", user.MaxNameLength+1), "Wong", now)
		assert.ErrorIs(t, err, user.ErrNameTooLong)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
