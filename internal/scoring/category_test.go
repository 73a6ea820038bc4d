package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryScore_Breakpoints(t *testing.T) {
	tests := []struct {
		category Category
		count    int
		want     int
	}{
		{Tool, -1, 1},
		{Tool, 0, 1},
		{Tool, 1, 5},
		{Tool, 2, 8},
		{Tool, 3, 10},
		{Tool, 7, 10},
		{Action, 0, 1},
		{Action, 1, 4},
		{Action, 2, 7},
		{Action, 3, 7},
		{Action, 4, 10},
		{Action, 9, 10},
		{Concept, 0, 1},
		{Concept, 1, 4},
		{Concept, 2, 7},
		{Concept, 3, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.Score(tt.count), "%s with %d matches", tt.category, tt.count)
	}
}

func TestCategoryScore_Monotonic(t *testing.T) {
	for _, c := range Categories {
		prev := c.Score(0)
		for count := 1; count <= 10; count++ {
			got := c.Score(count)
			assert.GreaterOrEqual(t, got, prev, "%s score dropped at count %d", c, count)
			prev = got
		}
		assert.Equal(t, maxScore, prev)
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name                  string
		tool, action, concept int
		want                  int
	}{
		{"all maximum", 10, 10, 10, 10},
		{"all minimum", 1, 1, 1, 1},
		{"tool and action pair", 8, 7, 1, 6},
		{"half rounds up", 5, 4, 4, 5},
		{"single action", 1, 4, 1, 2},
		{"tool only ceiling", 10, 1, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overall(map[Category]int{Tool: tt.tool, Action: tt.action, Concept: tt.concept})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverall_MissingCategoriesCountAsMinimum(t *testing.T) {
	assert.Equal(t, 1, Overall(nil))
	assert.Equal(t, 6, Overall(map[Category]int{Tool: 10}))
}

func TestBand(t *testing.T) {
	want := map[int]string{
		1: "1-2", 2: "1-2",
		3: "3-4", 4: "3-4",
		5: "5-6", 6: "5-6",
		7: "7-8", 8: "7-8",
		9: "9-10", 10: "9-10",
	}
	for score := 1; score <= 10; score++ {
		assert.Equal(t, want[score], Band(score), "score %d", score)
	}
}

func TestCategoryText(t *testing.T) {
	for _, c := range Categories {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var parsed Category
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, c, parsed)
	}

	_, err := Category(42).MarshalText()
	assert.Error(t, err)

	_, err = ParseCategory("vibes")
	assert.Error(t, err)
}

func TestCategoryMapKeysEncodeAsNames(t *testing.T) {
	data, err := json.Marshal(map[Category]int{Tool: 8, Concept: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tool": 8, "concept": 1}`, string(data))
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Tool", Tool.DisplayName())
	assert.Equal(t, "AI Implementation", Action.Criterion())
	assert.Equal(t, "AI Understanding", Concept.Criterion())
}
