package shared_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robles/shared"
)

func TestNewID(t *testing.T) {
	id := shared.NewID("room", 8)

	require.True(t, strings.HasPrefix(id, "room-"))
	assert.Len(t, id, len("room-")+8)

	assert.NotEqual(t, id, shared.NewID("room", 8))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{
			name:   "plain list",
			joined: "wifi,tv,minibar",
			want:   []string{"wifi", "tv", "minibar"},
		},
		{
			name:   "whitespace and empty segments",
			joined: " wifi , ,tv,",
			want:   []string{"wifi", "tv"},
		},
		{
			name:   "blank input",
			joined: "   ",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.SplitList(tt.joined))
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "wifi,tv", shared.JoinList([]string{"wifi", "tv"}))
	assert.Equal(t, "", shared.JoinList(nil))
}

func TestRemoveURL(t *testing.T) {
	urls := []string{
		"https://cdn.example.com/rooms/a.jpg",
		"https://cdn.example.com/rooms/b.jpg",
	}

	t.Run("exact match", func(t *testing.T) {
		remaining, removed := shared.RemoveURL(urls, "https://cdn.example.com/rooms/a.jpg")

		assert.True(t, removed)
		assert.Equal(t, []string{"https://cdn.example.com/rooms/b.jpg"}, remaining)
	})

	t.Run("trailing slash is insignificant", func(t *testing.T) {
		remaining, removed := shared.RemoveURL(urls, "https://cdn.example.com/rooms/b.jpg/")

		assert.True(t, removed)
		assert.Equal(t, []string{"https://cdn.example.com/rooms/a.jpg"}, remaining)
	})

	t.Run("unknown url", func(t *testing.T) {
		remaining, removed := shared.RemoveURL(urls, "https://cdn.example.com/rooms/c.jpg")

		assert.False(t, removed)
		assert.Len(t, remaining, 2)
	})
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 50))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 2, shared.CalculateTotalPage(51, 50))
	assert.Equal(t, 1, shared.CalculateTotalPage(50, 50))
}

func TestTransformFields(t *testing.T) {
	name := "Terraza"
	empty := ""
	available := false

	req := struct {
		Name      *string `db:"name"`
		Schedule  *string `db:"schedule"`
		Available *bool   `db:"available"`
		Skipped   *string `db:"features"`
		NoTag     string
	}{
		Name:      &name,
		Schedule:  &empty,
		Available: &available,
	}

	fields := shared.TransformFields(req)

	// Non-nil pointers are written even when they carry a zero value; that
	// is what makes clearing a field possible.
	assert.Equal(t, map[string]any{
		"name":      "Terraza",
		"schedule":  "",
		"available": false,
	}, fields)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:room-1", shared.BuildCacheKey("room:get", "room-1"))
}
