package queries

import (
	"context"
	"time"

	"foodshare/internal/domain/stats"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/tracing"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// streakLookback bounds the activity scan; longer streaks are reported as 365.
const streakLookback = 365 * 24 * time.Hour

type StatsReadStore interface {
	CountShared(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	CountClaimed(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	CountSharedBetween(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, from, to time.Time) (int64, error)
	CountClaimedByOthers(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	Contributors(ctx context.Context, db sqlc.DBTX) ([]stats.Contributor, error)
	ActivitySince(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

type StatsQueries interface {
	PersonalStats(ctx context.Context, userID uuid.UUID) (*PersonalStatsView, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardView, error)
}

type statsQueriesImpl struct {
	uow           shared.UnitOfWork
	store         StatsReadStore
	clock         clock.Clock
	loc           *time.Location
	challengeGoal int
}

func NewStatsQueries(uow shared.UnitOfWork, store StatsReadStore, clk clock.Clock, cfg config.Config) (StatsQueries, error) {
	loc, err := time.LoadLocation(cfg.Stats.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid stats timezone %q", cfg.Stats.TimeZone)
	}
	return &statsQueriesImpl{
		uow:           uow,
		store:         store,
		clock:         clk,
		loc:           loc,
		challengeGoal: cfg.Stats.ChallengeGoal,
	}, nil
}

// PersonalStats reads the counts and the contributor ranking from one snapshot.
// Unknown users get zero counts and rank after every contributor.
func (q *statsQueriesImpl) PersonalStats(ctx context.Context, userID uuid.UUID) (*PersonalStatsView, error) {
	ctx, span := tracing.Start(ctx, "stats.personal")
	defer span.End()

	var view *PersonalStatsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		sharedCount, err := q.store.CountShared(ctx, db, userID)
		if err != nil {
			return err
		}
		claimed, err := q.store.CountClaimed(ctx, db, userID)
		if err != nil {
			return err
		}
		contributors, err := q.store.Contributors(ctx, db)
		if err != nil {
			return err
		}
		view = toPersonalStatsView(userID, stats.ComputePersonal(sharedCount, claimed), stats.CommunityRank(contributors, userID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Dashboard reads totals, rank and monthly progress from one read-only
// snapshot so they agree with each other. The activity scan only feeds the
// streak and runs alongside it in its own transaction.
func (q *statsQueriesImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardView, error) {
	ctx, span := tracing.Start(ctx, "stats.dashboard")
	defer span.End()

	now := q.clock.Now()
	monthStart, monthEnd := stats.MonthBounds(now, q.loc)

	var (
		sharedCount, claimedCount, claimedByOthers int64
		sharedThisMonth                           int64
		rank                                      int
		activity                                  []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return q.uow.WithinReadOnly(gctx, func(ctx context.Context, db sqlc.DBTX) error {
			var err error
			if sharedCount, err = q.store.CountShared(ctx, db, userID); err != nil {
				return err
			}
			if claimedCount, err = q.store.CountClaimed(ctx, db, userID); err != nil {
				return err
			}
			if claimedByOthers, err = q.store.CountClaimedByOthers(ctx, db, userID); err != nil {
				return err
			}
			if sharedThisMonth, err = q.store.CountSharedBetween(ctx, db, userID, monthStart, monthEnd); err != nil {
				return err
			}
			contributors, err := q.store.Contributors(ctx, db)
			if err != nil {
				return err
			}
			rank = stats.CommunityRank(contributors, userID)
			return nil
		})
	})
	g.Go(func() error {
		return q.uow.WithinReadOnly(gctx, func(ctx context.Context, db sqlc.DBTX) error {
			var err error
			activity, err = q.store.ActivitySince(ctx, db, userID, now.Add(-streakLookback))
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	personal := stats.ComputePersonal(sharedCount, claimedCount)
	challenge := stats.MonthlyChallenge(int(sharedThisMonth), q.challengeGoal, now, q.loc)

	return &DashboardView{
		PersonalStatsView: *toPersonalStatsView(userID, personal, rank),
		ImpactScore:       stats.ImpactScore(sharedCount, claimedCount),
		StreakDays:        stats.StreakDays(activity, now, q.loc),
		Challenge: ChallengeView{
			Goal:        challenge.Goal,
			Progress:    challenge.Progress,
			Remaining:   challenge.Remaining,
			Completed:   challenge.Completed,
			PeriodStart: challenge.PeriodStart,
			PeriodEnd:   challenge.PeriodEnd,
		},
		Achievements: toAchievementViews(stats.Achievements(personal, claimedByOthers)),
	}, nil
}

func toPersonalStatsView(userID uuid.UUID, p stats.Personal, rank int) *PersonalStatsView {
	return &PersonalStatsView{
		UserID:        userID,
		MealsShared:   p.MealsShared,
		MealsClaimed:  p.MealsClaimed,
		FoodSavedKg:   p.FoodSavedKg,
		CO2SavedKg:    p.CO2SavedKg,
		CommunityRank: rank,
	}
}

func toAchievementViews(in []stats.Achievement) []AchievementView {
	out := make([]AchievementView, len(in))
	for i, a := range in {
		out[i] = AchievementView{
			Code:        string(a.Code),
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    a.Unlocked,
		}
	}
	return out
}
