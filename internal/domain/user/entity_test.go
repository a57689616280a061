//go:build unit

package user_test

import (
	"testing"
	"time"

	"foodshare/internal/domain/user"
	"foodshare/internal/pkg/errs"
	"foodshare/tests/common/builder"

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
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewDisplayName("Test User")
		loc, _ := user.NewLocation("Downtown")
		expected := user.NewUser(email, "hashed_password", name, loc, user.RoleBoth, b.Now)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.Verified())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "donor ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("donor") },
			},
			{
				name:   "claimant ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("claimant") },
			},
			{
				name:   "both ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("both") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("表示名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空の表示名NG",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("  ") },
				errIs:  user.ErrInvalidDisplayName,
			},
			{
				name:   "空の所在地OK",
				mutate: func(b *builder.UserBuilder) { b.WithLocation("") },
			},
		})
	})
}

func TestUser_ApplyProfileUpdate(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("部分更新OK", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		name := "New Name"
		require.NoError(t, u.ApplyProfileUpdate(user.ProfileUpdate{DisplayName: &name}, now))

		assert.Equal(t, "New Name", u.DisplayName().String())
		assert.Equal(t, "Downtown", u.Location().String())
		assert.Equal(t, user.RoleBoth, u.Role())
		assert.Equal(t, now, u.UpdatedAt())
	})

	t.Run("無効な値は何も変更しない", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		name := "Changed"
		role := "admin"
		err = u.ApplyProfileUpdate(user.ProfileUpdate{DisplayName: &name, Role: &role}, now)
		require.ErrorIs(t, err, user.ErrInvalidRole)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "Test User", u.DisplayName().String())
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
