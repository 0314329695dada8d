//go:build unit

package readstore

import (
	"context"
	"testing"

	"vinyl-record-house/internal/infra"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetProfile(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.UserProfiles, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.UserProfiles), args.Error(1)
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "success - inactive user (for validation)",
			userID:     inactiveUser.ID,
			mockReturn: inactiveUser,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, view) {
					assert.Equal(t, tt.userID, view.ID)
					assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
					assert.Nil(t, view.LastLogin)
					assert.Equal(t, tt.mockReturn.CreatedAt.Time, view.CreatedAt)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindProfile(t *testing.T) {
	b := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.Email = "ada@example.com"
		b.FirstName = "Ada"
	})
	testUser := b.BuildInfra()
	testProfile := b.BuildInfraProfile()

	t.Run("success - merges email into the profile", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, testUser.ID).Return(testUser, nil)
		mockQueries.On("GetProfile", mock.Anything, mock.Anything, testUser.ID).Return(testProfile, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindProfile(context.Background(), testUser.ID)

		assert.NoError(t, err)
		if assert.NotNil(t, view) {
			assert.Equal(t, "ada@example.com", view.Email)
			assert.Equal(t, "Ada", view.FirstName)
			assert.Equal(t, testProfile.Country, view.Country)
		}
		mockQueries.AssertExpectations(t)
	})

	t.Run("unknown user skips the profile lookup", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, testUser.ID).Return(sqlc.Users{}, pgx.ErrNoRows)

		view, err := NewUserReadStore(mockQueries, nil).FindProfile(context.Background(), testUser.ID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing profile row", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, testUser.ID).Return(testUser, nil)
		mockQueries.On("GetProfile", mock.Anything, mock.Anything, testUser.ID).Return(sqlc.UserProfiles{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).FindProfile(context.Background(), testUser.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})
}
