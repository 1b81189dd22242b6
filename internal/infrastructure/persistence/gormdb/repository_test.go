package gormdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstock/internal/domain/author"
	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedBook(t *testing.T, db *gorm.DB, barcode string) *book.Book {
	t.Helper()
	ctx := context.Background()
	a := author.NewAuthor("Anna Akhmatova", "1889-06-23")
	require.NoError(t, NewAuthorRepository(db).Create(ctx, a))
	b := book.NewBook(barcode, "Requiem", 1963, a.ID)
	require.NoError(t, NewBookRepository(db).Create(ctx, b))
	return b
}

func TestAuthorRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	a := author.NewAuthor("Nikolai Gogol", "1809-04-01")
	require.NoError(t, repo.Create(ctx, a))
	assert.NotZero(t, a.ID)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nikolai Gogol", got.Name)
	assert.Equal(t, "1809-04-01", got.BirthDate)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	byID, err := repo.FindByIDs(ctx, []uint{a.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.Equal(t, a.ID, byID[a.ID].ID)
}

func TestBookRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	first := seedBook(t, db, "4600")
	second := book.NewBook("4600", "Requiem, 2nd ed.", 1987, first.AuthorID)
	require.NoError(t, repo.Create(ctx, second))
	other := book.NewBook("", "No barcode", 2001, first.AuthorID)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("FindByID", func(t *testing.T) {
		got, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, 1987, got.PublishYear)

		_, err = repo.FindByID(ctx, 12345)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("FindByBarcode按ID升序", func(t *testing.T) {
		books, err := repo.FindByBarcode(ctx, "4600")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, first.ID, books[0].ID)
		assert.Equal(t, second.ID, books[1].ID)

		none, err := repo.FindByBarcode(ctx, "0000")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("FirstByBarcode取ID最小", func(t *testing.T) {
		got, err := repo.FirstByBarcode(ctx, "4600")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = repo.FirstByBarcode(ctx, "0000")
		assert.ErrorIs(t, err, book.ErrUnknownBarcode)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := repo.ExistsByBarcode(ctx, "4600")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByBarcode(ctx, "0000")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.ExistsByID(ctx, other.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByID(ctx, 12345)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestStockEventRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockEventRepository(db)
	ctx := context.Background()
	b := seedBook(t, db, "777")

	_, found, err := repo.Latest(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, found)

	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	for _, q := range []int{10, -3, 0} {
		e := ledger.NewStockEvent(b.ID, q, &ts)
		require.NoError(t, repo.Append(ctx, e))
		assert.NotZero(t, e.ID)
	}

	latest, found, err := repo.Latest(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 0, latest.Quantity)

	events, err := repo.ListByBook(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 10, events[0].Quantity)
	assert.True(t, ts.Equal(events[0].Timestamp))
	assert.Less(t, events[0].ID, events[1].ID)
}

func TestTxManager(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	b := seedBook(t, db, "888")
	repo := NewStockEventRepository(db)
	tm := NewTxManager(db)

	t.Run("出错回滚", func(t *testing.T) {
		err := tm.Transaction(ctx, func(ctx context.Context) error {
			require.NoError(t, repo.Append(ctx, ledger.NewStockEvent(b.ID, 5, nil)))
			return errors.New("abort")
		})
		assert.EqualError(t, err, "abort")

		events, err := repo.ListByBook(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("成功提交", func(t *testing.T) {
		err := tm.Transaction(ctx, func(ctx context.Context) error {
			return repo.Append(ctx, ledger.NewStockEvent(b.ID, 5, nil))
		})
		require.NoError(t, err)

		events, err := repo.ListByBook(ctx, b.ID)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestLedgerService_OnSQLite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	b := seedBook(t, db, "999")

	svc := ledger.NewService(NewStockEventRepository(db), NewBookRepository(db), NewTxManager(db), nil, nil, nil)

	n, err := svc.BulkAppend(ctx, []ledger.Entry{
		{BookID: b.ID, Quantity: 3},
		{BookID: b.ID + 100, Quantity: 1},
		{BookID: b.ID, Quantity: 9},
	})
	assert.ErrorIs(t, err, ledger.ErrUnknownBook)
	assert.Equal(t, 1, n)

	q, err := svc.CurrentQuantity(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, q)
}
