package commands

import (
	"context"

	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk}
}

func (c *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := u.ApplyProfileUpdate(req.ToDomain(), c.clock.Now()); err != nil {
			return err
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
}
