package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortDescriptionOf(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "shorter than limit is unchanged",
			description: "A cozy home bakery",
			want:        "A cozy home bakery",
		},
		{
			name:        "empty is unchanged",
			description: "",
			want:        "",
		},
		{
			name:        "exactly the limit is unchanged",
			description: strings.Repeat("a", 100),
			want:        strings.Repeat("a", 100),
		},
		{
			name:        "one over the limit is cut to the limit",
			description: strings.Repeat("a", 101),
			want:        strings.Repeat("a", 100),
		},
		{
			name:        "long text is cut to the limit",
			description: strings.Repeat("x", 150),
			want:        strings.Repeat("x", 100),
		},
		{
			name:        "multi-byte runes are counted as single characters",
			description: strings.Repeat("早", 120),
			want:        strings.Repeat("早", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortDescriptionOf(tt.description)

			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), ShortDescriptionLimit)
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range []Category{CategoryFood, CategoryBeauty, CategoryFusion, CategoryServices} {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}

	assert.False(t, Category("Retail").IsValid())
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("food").IsValid(), "categories are case sensitive")
}
