package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hope Foundation", "hope-foundation"},
		{"  Trimmed   Spaces  ", "trimmed-spaces"},
		{"Café Crèche", "cafe-creche"},
		{"Already-slugged", "already-slugged"},
		{"UPPER & lower!!", "upper-lower"},
		{"---", "item"},
		{"", "item"},
		{"😀😀😀", "item"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in, 0), "input %q", tt.in)
	}
}

func TestSlugify_MaxLen(t *testing.T) {
	out := Slugify("a very long organization name that keeps going", 10)
	assert.LessOrEqual(t, len(out), 10)
	assert.NotEqual(t, "-", out[len(out)-1:])
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	pg := BuildPagination(p, 35, 10)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = BuildPagination(Paging{Page: 1, PerPage: 10}, 5, 5)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)

	pg = BuildPagination(Paging{Page: 1, PerPage: 10}, 0, 0)
	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNext)
}
