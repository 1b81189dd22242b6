package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo 内存流水仓储
type memRepo struct {
	mu     sync.Mutex
	events []*StockEvent
	failAt int // 第failAt次Append返回错误（从1开始，0表示不失败）
	calls  int
}

func (r *memRepo) Append(_ context.Context, e *StockEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failAt > 0 && r.calls == r.failAt {
		return errors.New("disk full")
	}
	e.ID = uint(len(r.events) + 1)
	r.events = append(r.events, e)
	return nil
}

func (r *memRepo) Latest(_ context.Context, bookID uint) (*StockEvent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].BookID == bookID {
			return r.events[i], true, nil
		}
	}
	return nil, false, nil
}

func (r *memRepo) ListByBook(_ context.Context, bookID uint) ([]*StockEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*StockEvent
	for _, e := range r.events {
		if e.BookID == bookID {
			out = append(out, e)
		}
	}
	return out, nil
}

type bookSet map[uint]bool

func (b bookSet) ExistsByID(_ context.Context, id uint) (bool, error) { return b[id], nil }

type directTx struct{}

func (directTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mapCache 与Redis实现相同的按流水ID覆盖语义
type mapCache struct {
	values   map[uint]int
	versions map[uint]uint
	getErr   error
}

func (c *mapCache) Get(_ context.Context, id uint) (int, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	v, ok := c.values[id]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, id, eventID uint, q int) error {
	if c.versions == nil {
		c.versions = map[uint]uint{}
	}
	if v, ok := c.versions[id]; ok && v > eventID {
		return nil
	}
	c.values[id] = q
	c.versions[id] = eventID
	return nil
}

// fillRaceRepo Latest返回之后、回填之前插入一条更新的流水
type fillRaceRepo struct {
	*memRepo
	onLatest func()
}

func (r *fillRaceRepo) Latest(ctx context.Context, bookID uint) (*StockEvent, bool, error) {
	e, found, err := r.memRepo.Latest(ctx, bookID)
	if r.onLatest != nil {
		fn := r.onLatest
		r.onLatest = nil
		fn()
	}
	return e, found, err
}

type recordingPublisher struct {
	events []*StockEvent
}

func (p *recordingPublisher) PublishRecorded(_ context.Context, e *StockEvent) error {
	p.events = append(p.events, e)
	return nil
}

func newTestService(repo *memRepo, cache QuantityCache, pub EventPublisher) Service {
	return NewService(repo, bookSet{1: true, 2: true}, directTx{}, cache, pub, nil)
}

func TestService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("默认时间为当前时间", func(t *testing.T) {
		svc := newTestService(&memRepo{}, nil, nil)
		before := time.Now()
		e, err := svc.Append(ctx, 1, 5, nil)
		require.NoError(t, err)
		assert.Equal(t, uint(1), e.ID)
		assert.False(t, e.Timestamp.Before(before))
	})

	t.Run("指定时间", func(t *testing.T) {
		svc := newTestService(&memRepo{}, nil, nil)
		ts := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
		e, err := svc.Append(ctx, 1, -2, &ts)
		require.NoError(t, err)
		assert.Equal(t, ts, e.Timestamp)
		assert.Equal(t, -2, e.Quantity)
	})

	t.Run("图书不存在", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, nil, nil)
		_, err := svc.Append(ctx, 99, 1, nil)
		assert.ErrorIs(t, err, ErrUnknownBook)
		assert.Empty(t, repo.events)
	})

	t.Run("写入后刷新缓存并发布事件", func(t *testing.T) {
		cache := &mapCache{values: map[uint]int{}}
		pub := &recordingPublisher{}
		svc := newTestService(&memRepo{}, cache, pub)

		_, err := svc.Append(ctx, 2, 8, nil)
		require.NoError(t, err)
		assert.Equal(t, 8, cache.values[2])
		require.Len(t, pub.events, 1)
		assert.Equal(t, uint(2), pub.events[0].BookID)
	})
}

func TestService_CurrentQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("没有流水时为0", func(t *testing.T) {
		svc := newTestService(&memRepo{}, nil, nil)
		q, err := svc.CurrentQuantity(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, q)
	})

	t.Run("取最后插入的流水原值而非累加和", func(t *testing.T) {
		svc := newTestService(&memRepo{}, nil, nil)
		later := time.Now().Add(time.Hour)
		_, _ = svc.Append(ctx, 1, 10, &later)
		_, _ = svc.Append(ctx, 1, -3, nil) // 时间更早，但插入更晚
		q, err := svc.CurrentQuantity(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, -3, q)
	})

	t.Run("缓存命中", func(t *testing.T) {
		cache := &mapCache{values: map[uint]int{1: 42}}
		svc := newTestService(&memRepo{}, cache, nil)
		q, err := svc.CurrentQuantity(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 42, q)
	})

	t.Run("回填不会覆盖并发写入的更新值", func(t *testing.T) {
		mem := &memRepo{}
		repo := &fillRaceRepo{memRepo: mem}
		cache := &mapCache{values: map[uint]int{}}
		svc := NewService(repo, bookSet{1: true}, directTx{}, cache, nil, nil)

		_, err := svc.Append(ctx, 1, 4, nil)
		require.NoError(t, err)
		delete(cache.values, 1)
		delete(cache.versions, 1)

		repo.onLatest = func() {
			_, err := svc.Append(ctx, 1, 9, nil)
			require.NoError(t, err)
		}

		q, err := svc.CurrentQuantity(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, q, "本次读取返回读到的值")

		q, err = svc.CurrentQuantity(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 9, q, "缓存保留最后插入的流水")
	})

	t.Run("缓存出错时回源", func(t *testing.T) {
		repo := &memRepo{}
		cache := &mapCache{values: map[uint]int{}, getErr: errors.New("redis down")}
		svc := newTestService(repo, cache, nil)
		_, _ = svc.Append(ctx, 1, 6, nil)

		q, err := svc.CurrentQuantity(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 6, q)
	})
}

func TestService_RangeSummaryAndHistory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&memRepo{}, nil, nil)

	t1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t2.Add(24 * time.Hour)
	for _, ev := range []struct {
		ts  time.Time
		qty int
	}{{t1, 10}, {t2, -3}, {t3, 5}} {
		ts := ev.ts
		_, err := svc.Append(ctx, 1, ev.qty, &ts)
		require.NoError(t, err)
	}
	_, _ = svc.Append(ctx, 2, 100, &t2)

	s, err := svc.RangeSummary(ctx, 1, t2, t3)
	require.NoError(t, err)
	assert.Equal(t, 2, s.StartBalance)
	assert.Equal(t, 12, s.EndBalance)
	require.Len(t, s.Entries, 2)
	assert.Equal(t, t3, s.Entries[0].Timestamp)

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 10, history[0].Quantity)
	assert.Equal(t, 5, history[2].Quantity)
}

func TestService_BulkAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("全部写入", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, nil, nil)
		n, err := svc.BulkAppend(ctx, []Entry{{BookID: 1, Quantity: 5}, {BookID: 2, Quantity: -2}})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, repo.events, 2)
	})

	t.Run("中途失败保留已写入的流水", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, nil, nil)
		n, err := svc.BulkAppend(ctx, []Entry{
			{BookID: 1, Quantity: 1},
			{BookID: 2, Quantity: 2},
			{BookID: 99, Quantity: 3}, // 图书在校验后被删除
			{BookID: 1, Quantity: 4},
		})
		assert.ErrorIs(t, err, ErrUnknownBook)
		assert.Equal(t, 2, n)
		assert.Len(t, repo.events, 2)
	})

	t.Run("仓储错误", func(t *testing.T) {
		repo := &memRepo{failAt: 2}
		svc := newTestService(repo, nil, nil)
		n, err := svc.BulkAppend(ctx, []Entry{{BookID: 1, Quantity: 1}, {BookID: 1, Quantity: 2}})
		assert.ErrorContains(t, err, "disk full")
		assert.Equal(t, 1, n)
	})
}
