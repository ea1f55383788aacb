package news

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caatpension/pension-api/internal/domain"
)

func TestList_SortedNewestFirst(t *testing.T) {
	svc := NewService()

	got := svc.List(0, 10, "")
	require.Len(t, got, 4)

	want := []int{1, 2, 3, 4} // 2024-12-15, 2024-11-30, 2024-10-20, 2024-10-16
	for i, a := range got {
		require.Equal(t, want[i], a.ID)
	}
	for i := 1; i < len(got); i++ {
		require.False(t, got[i-1].PublishedAt.Before(got[i].PublishedAt))
	}
}

func TestList_CategoryFilter(t *testing.T) {
	svc := NewService()

	got := svc.List(0, 10, "performance")
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].ID)

	require.Empty(t, svc.List(0, 10, "no-such-category"))
}

func TestList_Pagination(t *testing.T) {
	svc := NewService()

	page := svc.List(1, 2, "")
	require.Len(t, page, 2)
	require.Equal(t, 2, page[0].ID)
	require.Equal(t, 3, page[1].ID)

	// limit beyond the end returns what remains
	tail := svc.List(3, 10, "")
	require.Len(t, tail, 1)
	require.Equal(t, 4, tail[0].ID)

	// skip past the end yields an empty list, not an error
	require.Empty(t, svc.List(100, 10, ""))
}

func TestByID(t *testing.T) {
	svc := NewService()

	a, err := svc.ByID(3)
	require.NoError(t, err)
	require.Equal(t, "employers", a.Category)

	_, err = svc.ByID(99)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFeatured(t *testing.T) {
	svc := NewService()

	got := svc.Featured(3)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID) // newest featured first
	require.Equal(t, 2, got[1].ID)

	require.Len(t, svc.Featured(1), 1)
}

func TestCategories_SortedAscending(t *testing.T) {
	svc := NewService()
	require.Equal(t, []string{"employers", "governance", "performance", "technology"}, svc.Categories())
}
