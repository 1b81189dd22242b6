package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstock/internal/domain/author"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 10
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) FindByBarcode(ctx context.Context, barcode string) ([]*Book, error) {
	args := m.Called(ctx, barcode)
	b, _ := args.Get(0).([]*Book)
	return b, args.Error(1)
}

func (m *mockRepo) FirstByBarcode(ctx context.Context, barcode string) (*Book, error) {
	args := m.Called(ctx, barcode)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepo) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	args := m.Called(ctx, barcode)
	return args.Bool(0), args.Error(1)
}

type stubAuthors map[uint]*author.Author

func (s stubAuthors) Create(context.Context, *author.Author) error { return nil }

func (s stubAuthors) FindByID(_ context.Context, id uint) (*author.Author, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, author.ErrAuthorNotFound
}

func (s stubAuthors) FindByIDs(context.Context, []uint) (map[uint]*author.Author, error) {
	return s, nil
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()
	authors := stubAuthors{1: {ID: 1, Name: "Pushkin"}}

	t.Run("成功", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)

		b, err := NewService(repo, authors).CreateBook(ctx, "123", "Eugene Onegin", 1833, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(10), b.ID)
		assert.Equal(t, 1833, b.PublishYear)
	})

	t.Run("作者不存在", func(t *testing.T) {
		repo := new(mockRepo)
		_, err := NewService(repo, authors).CreateBook(ctx, "123", "Title", 2000, 42)
		assert.ErrorIs(t, err, ErrInvalidAuthor)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("书名为空", func(t *testing.T) {
		_, err := NewService(new(mockRepo), authors).CreateBook(ctx, "123", "", 2000, 1)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("条码可以为空", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)
		b, err := NewService(repo, authors).CreateBook(ctx, "", "Untitled draft", 0, 1)
		require.NoError(t, err)
		assert.Empty(t, b.Barcode)
	})
}

func TestService_SearchByBarcode_EmptyIsNotError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("FindByBarcode", ctx, "000").Return(nil, nil)

	books, err := NewService(repo, stubAuthors{}).SearchByBarcode(ctx, "000")
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}
