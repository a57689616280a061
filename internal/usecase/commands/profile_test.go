//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"foodshare/internal/domain/user"
	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/ptr"
	"foodshare/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileCommands_UpdateProfile(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("applies partial update", func(t *testing.T) {
		h := newTxHarness(t)
		cmds := NewProfileCommands(h.uow, clock.NewMockClock(now))
		current := builder.NewUserBuilder().BuildReconstructed()

		h.expectWithin(1)
		h.reads.EXPECT().UserByID(gomock.Any(), current.ID()).Return(current, nil)
		h.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
				assert.Equal(t, "New Name", u.DisplayName().String())
				assert.Equal(t, "Downtown", u.Location().String())
				assert.Equal(t, now, u.UpdatedAt())
				return nil
			})

		err := cmds.UpdateProfile(context.Background(), current.ID(), reqdto.UpdateProfileRequest{DisplayName: ptr.Of("New Name")})

		require.NoError(t, err)
	})

	t.Run("invalid role is rejected before writing", func(t *testing.T) {
		h := newTxHarness(t)
		cmds := NewProfileCommands(h.uow, clock.NewMockClock(now))
		current := builder.NewUserBuilder().BuildReconstructed()

		h.expectWithin(1)
		h.reads.EXPECT().UserByID(gomock.Any(), current.ID()).Return(current, nil)

		err := cmds.UpdateProfile(context.Background(), current.ID(), reqdto.UpdateProfileRequest{Role: ptr.Of("admin")})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown user", func(t *testing.T) {
		h := newTxHarness(t)
		cmds := NewProfileCommands(h.uow, clock.NewMockClock(now))
		current := builder.NewUserBuilder()

		h.expectWithin(1)
		h.reads.EXPECT().UserByID(gomock.Any(), current.ID).
			Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))

		err := cmds.UpdateProfile(context.Background(), current.ID, reqdto.UpdateProfileRequest{Location: ptr.Of("Uptown")})

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
