package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/domain/payment"
	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/testutil"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

func createCreator(t *testing.T, repo *CreatorRepository, slug string) *creator.Creator {
	t.Helper()
	c, err := creator.NewCreator(slug, slug, "https://example.com/"+slug, nil, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func createSupporter(t *testing.T, repo *SupporterRepository, budgetPerMonth int64) *supporter.Supporter {
	t.Helper()
	s, err := supporter.NewSupporter(budgetPerMonth)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func settledAllocation(t *testing.T, supporterID uint, amount int64, supportCount int) *budget.Allocation {
	t.Helper()
	alloc, err := budget.NewAllocation(supporterID, amount)
	require.NoError(t, err)

	supports := make([]*supporter.Support, 0, supportCount)
	for i := 0; i < supportCount; i++ {
		s, err := supporter.NewSupport(supporterID, uint(i+1), true, 0)
		require.NoError(t, err)
		supports = append(supports, s)
	}
	result, err := budget.NewDistributor().Distribute(alloc, supports)
	require.NoError(t, err)
	require.True(t, result.Distributed())
	return alloc
}

func TestCreatorRepository(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewCreatorRepository(gdb)
	ctx := context.Background()

	c, err := creator.NewCreator("", "Python Software Foundation", "https://python.org/psf-landing", nil, "**PSF**")
	require.NoError(t, err)
	gh, err := creator.NewPaymentMethod(0, creator.GitHubSponsors{GitHubID: 1525981, GitHubLogin: "python"})
	require.NoError(t, err)
	require.NoError(t, c.AddPaymentMethod(gh))

	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID())
	assert.NotZero(t, gh.ID())
	assert.Equal(t, c.ID(), gh.CreatorID())

	t.Run("get by slug loads payment methods in one query", func(t *testing.T) {
		found, err := repo.GetBySlug(ctx, "python-software-foundation")
		require.NoError(t, err)
		require.Len(t, found.PaymentMethods(), 1)

		kind := found.PaymentMethods()[0].Kind()
		assert.Equal(t, creator.TypeGitHubSponsors, kind.Type())
		assert.Equal(t, "https://github.com/sponsors/python", kind.HTMLURL())
		assert.Equal(t, "**PSF**", found.Description())
	})

	t.Run("add payment method", func(t *testing.T) {
		patreon, err := creator.NewPaymentMethod(c.ID(), creator.Patreon{CampaignID: 9, Vanity: "psf"})
		require.NoError(t, err)
		require.NoError(t, repo.AddPaymentMethod(ctx, patreon))

		found, err := repo.GetByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Len(t, found.PaymentMethods(), 2)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		dup, err := creator.NewCreator("python-software-foundation", "Other", "https://example.com", nil, "")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, dup))

		exists, err := repo.ExistsBySlug(ctx, "python-software-foundation")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, "missing")
		assert.ErrorIs(t, err, creator.ErrCreatorNotFound)
	})

	t.Run("list", func(t *testing.T) {
		createCreator(t, repo, "another")
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestSupportRepository(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	creators := NewCreatorRepository(gdb)
	supporters := NewSupporterRepository(gdb)
	repo := NewSupportRepository(gdb)
	ctx := context.Background()

	s := createSupporter(t, supporters, 1000)
	a := createCreator(t, creators, "a")
	b := createCreator(t, creators, "b")

	edgeA, err := supporter.NewSupport(s.ID(), a.ID(), true, 100)
	require.NoError(t, err)
	edgeB, err := supporter.NewSupport(s.ID(), b.ID(), false, 0)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, edgeA))
	require.NoError(t, repo.Upsert(ctx, edgeB))

	count, err := repo.CountPayingBySupporterID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, edgeA.Credit(250))
	require.NoError(t, repo.UpdateOutstanding(ctx, []*supporter.Support{edgeA}))

	t.Run("upsert keeps outstanding balance", func(t *testing.T) {
		again, err := supporter.NewSupport(s.ID(), a.ID(), false, 300)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, again))

		got, err := repo.Get(ctx, s.ID(), a.ID())
		require.NoError(t, err)
		assert.False(t, got.WantToPay())
		assert.Equal(t, int64(300), got.MinimumPaymentPerMonth())
		assert.Equal(t, int64(250), got.PaymentAmountOutstanding())
	})

	t.Run("paying list follows want_to_pay", func(t *testing.T) {
		edgeB.SetWantToPay(true)
		require.NoError(t, repo.Upsert(ctx, edgeB))

		paying, err := repo.ListPayingBySupporterID(ctx, s.ID())
		require.NoError(t, err)
		require.Len(t, paying, 1)
		assert.Equal(t, b.ID(), paying[0].CreatorID())

		all, err := repo.ListBySupporterID(ctx, s.ID())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("missing edge", func(t *testing.T) {
		_, err := repo.Get(ctx, s.ID(), 999)
		assert.ErrorIs(t, err, supporter.ErrSupportNotFound)

		ghost, err := supporter.NewSupport(s.ID(), 999, true, 0)
		require.NoError(t, err)
		err = repo.UpdateOutstanding(ctx, []*supporter.Support{ghost})
		assert.ErrorIs(t, err, supporter.ErrSupportNotFound)
	})
}

func TestAllocationRepository(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	supporters := NewSupporterRepository(gdb)
	repo := NewAllocationRepository(gdb)
	ctx := context.Background()

	s := createSupporter(t, supporters, 1000)

	t.Run("no allocations yet", func(t *testing.T) {
		latest, err := repo.GetLatestBySupporterID(ctx, s.ID())
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("unsettled allocation is refused", func(t *testing.T) {
		alloc, err := budget.NewAllocation(s.ID(), 10)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, alloc), budget.ErrAllocationNotSettled)
	})

	t.Run("created_at defaults to aware now", func(t *testing.T) {
		before := biztime.NowUTC()
		alloc := settledAllocation(t, s.ID(), 1000, 999)
		require.NoError(t, repo.Create(ctx, alloc))
		assert.NotZero(t, alloc.ID())

		latest, err := repo.GetLatestBySupporterID(ctx, s.ID())
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, alloc.ID(), latest.ID())
		assert.Equal(t, int64(999), latest.AllocationAmount())
		assert.Equal(t, int64(1), latest.UndistributedAmount())
		assert.Equal(t, time.UTC, latest.CreatedAt().Location())
		assert.False(t, latest.CreatedAt().Before(before.Truncate(time.Microsecond)))
		assert.True(t, alloc.CreatedAt().Equal(latest.CreatedAt()))
	})

	t.Run("explicit aware time is kept exactly", func(t *testing.T) {
		at := time.Date(2030, 1, 1, 0, 0, 0, 123456789, time.FixedZone("UTC+2", 7200))
		alloc := settledAllocation(t, s.ID(), 10, 1)
		require.NoError(t, alloc.StampCreatedAt(at))
		require.NoError(t, repo.Create(ctx, alloc))

		latest, err := repo.GetLatestBySupporterID(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, alloc.ID(), latest.ID())
		assert.True(t, at.Equal(latest.CreatedAt()))
	})

	t.Run("ties on created_at go to highest id", func(t *testing.T) {
		at := time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC)
		var last *budget.Allocation
		for i := 0; i < 3; i++ {
			last = settledAllocation(t, s.ID(), 10, 1)
			require.NoError(t, last.StampCreatedAt(at))
			require.NoError(t, repo.Create(ctx, last))
		}

		latest, err := repo.GetLatestBySupporterID(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, last.ID(), latest.ID())
	})

	t.Run("naive stored timestamp is rejected on read", func(t *testing.T) {
		other := createSupporter(t, supporters, 0)
		require.NoError(t, gdb.Exec(
			`INSERT INTO budget_allocations (supporter_id, allocation_amount, undistributed_amount, created_at) VALUES (?, 1, 0, ?)`,
			other.ID(), "2024-01-01 00:00:00",
		).Error)

		_, err := repo.GetLatestBySupporterID(ctx, other.ID())
		assert.ErrorIs(t, err, biztime.ErrNaiveTimestamp)
	})

	t.Run("list newest first with limit", func(t *testing.T) {
		list, err := repo.ListBySupporterID(ctx, s.ID(), 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Greater(t, list[0].ID(), list[1].ID())
	})
}

func TestSupporterRepository_ForUpdateInTransaction(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewSupporterRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	s := createSupporter(t, repo, 500)

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := repo.GetByIDForUpdate(txCtx, s.ID())
		if err != nil {
			return err
		}
		if err := locked.SetBudgetPerMonth(900); err != nil {
			return err
		}
		return repo.Update(txCtx, locked)
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.BudgetPerMonth())

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{s.ID()}, ids)

	_, err = repo.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, supporter.ErrSupporterNotFound)

	_, err = repo.GetByIDForUpdate(ctx, s.ID())
	assert.ErrorIs(t, err, db.ErrNoTransaction)
}

func TestPaymentRepository(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	creators := NewCreatorRepository(gdb)
	supporters := NewSupporterRepository(gdb)
	repo := NewPaymentRepository(gdb)
	ctx := context.Background()

	s := createSupporter(t, supporters, 1000)
	c, err := creator.NewCreator("psf", "PSF", "https://python.org", nil, "")
	require.NoError(t, err)
	pm, err := creator.NewPaymentMethod(0, creator.GitHubSponsors{GitHubID: 1, GitHubLogin: "python"})
	require.NoError(t, err)
	require.NoError(t, c.AddPaymentMethod(pm))
	require.NoError(t, creators.Create(ctx, c))

	paidAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p, err := payment.NewPayment(s.ID(), c.ID(), pm.ID(), vo.MustMoney(500, "USD"), &paidAt)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.True(t, paidAt.Equal(got.PaidAt()))
	assert.Equal(t, int64(500), got.Amount().Amount())
	assert.Equal(t, "USD", got.Amount().Currency())

	list, err := repo.ListBySupporterID(ctx, s.ID(), 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}
