package catalog

import (
	"fmt"
	"testing"

	"college-compass/internal/common/errors"
	"college-compass/internal/common/logger"
	"college-compass/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `[
  {
    "id": 1, "code": 101, "name": "Alpha Institute", "ranking": 1,
    "highestPackage": 50, "description": "First.", "image": "https://example.com/a.png",
    "courses": [
      {"id": 11, "name": "Computer Science Engineering",
       "cutoffs": {"OC": 199, "MBC": 198, "BC": 198.5, "BCM": 197.5, "SC": 195}},
      {"id": 12, "name": "Mechanical Engineering",
       "cutoffs": {"OC": 196, "MBC": 194, "BC": 195, "BCM": 193, "SC": 188}}
    ]
  },
  {
    "id": 2, "code": 102, "name": "Beta College", "ranking": 3,
    "highestPackage": 42, "description": "Second.", "image": "https://example.com/b.png",
    "courses": [
      {"id": 21, "name": "Information Technology",
       "cutoffs": {"OC": 197, "MBC": 195, "BC": 196, "BCM": 194, "SC": 187}}
    ]
  },
  {
    "id": 3, "code": 103, "name": "Gamma College", "ranking": 2,
    "highestPackage": 42, "description": "Third.", "image": "https://example.com/c.png",
    "courses": [
      {"id": 31, "name": "Civil Engineering",
       "cutoffs": {"OC": 194, "MBC": 192, "BC": 193, "BCM": 191, "SC": 182}}
    ]
  }
]`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Parse([]byte(testDataset), logger.NewTestLogger(t))
	require.NoError(t, err)
	return store
}

func TestParseValidDataset(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, 3, store.Len())

	college, err := store.College(1)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Institute", college.Name)
	assert.Len(t, college.Courses, 2)
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		dataset string
	}{
		{
			name:    "not an array",
			dataset: `{"id": 1}`,
		},
		{
			name: "missing required field",
			dataset: `[{"id": 1, "code": 101, "ranking": 1, "highestPackage": 50,
				"description": "x", "courses": []}]`,
		},
		{
			name: "unknown property",
			dataset: `[{"id": 1, "code": 101, "name": "A", "ranking": 1, "highestPackage": 50,
				"description": "x", "location": "nowhere", "courses": []}]`,
		},
		{
			name: "missing category cutoff",
			dataset: `[{"id": 1, "code": 101, "name": "A", "ranking": 1, "highestPackage": 50,
				"description": "x", "courses": [
					{"id": 11, "name": "CSE", "cutoffs": {"OC": 199, "MBC": 198, "BC": 198.5, "BCM": 197.5}}
				]}]`,
		},
		{
			name: "negative cutoff",
			dataset: `[{"id": 1, "code": 101, "name": "A", "ranking": 1, "highestPackage": 50,
				"description": "x", "courses": [
					{"id": 11, "name": "CSE", "cutoffs": {"OC": -1, "MBC": 198, "BC": 198.5, "BCM": 197.5, "SC": 195}}
				]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.dataset), logger.NewTestLogger(t))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogSchemaFailed),
				"expected schema failure, got %v", err)
		})
	}
}

func TestParseUniquenessInvariants(t *testing.T) {
	college := func(id, code, ranking int) string {
		return fmt.Sprintf(`{"id": %d, "code": %d, "name": "C%d", "ranking": %d,
			"highestPackage": 10, "description": "x", "courses": [
				{"id": 1, "name": "CSE", "cutoffs": {"OC": 1, "MBC": 1, "BC": 1, "BCM": 1, "SC": 1}}
			]}`, id, code, id, ranking)
	}

	tests := []struct {
		name    string
		dataset string
	}{
		{
			name:    "duplicate college id",
			dataset: "[" + college(1, 101, 1) + "," + college(1, 102, 2) + "]",
		},
		{
			name:    "duplicate college code",
			dataset: "[" + college(1, 101, 1) + "," + college(2, 101, 2) + "]",
		},
		{
			name:    "duplicate ranking",
			dataset: "[" + college(1, 101, 1) + "," + college(2, 102, 1) + "]",
		},
		{
			name: "duplicate course id within college",
			dataset: `[{"id": 1, "code": 101, "name": "A", "ranking": 1, "highestPackage": 10,
				"description": "x", "courses": [
					{"id": 11, "name": "CSE", "cutoffs": {"OC": 1, "MBC": 1, "BC": 1, "BCM": 1, "SC": 1}},
					{"id": 11, "name": "IT", "cutoffs": {"OC": 1, "MBC": 1, "BC": 1, "BCM": 1, "SC": 1}}
				]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.dataset), logger.NewTestLogger(t))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogSchemaFailed))
		})
	}
}

func TestListSorting(t *testing.T) {
	store := newTestStore(t)

	names := func(colleges []models.College) []string {
		out := make([]string, len(colleges))
		for i, c := range colleges {
			out[i] = c.Name
		}
		return out
	}

	tests := []struct {
		name     string
		opts     ListOptions
		expected []string
	}{
		{
			name:     "default is ranking ascending",
			opts:     ListOptions{},
			expected: []string{"Alpha Institute", "Gamma College", "Beta College"},
		},
		{
			name:     "ranking descending",
			opts:     ListOptions{SortBy: SortByRanking, Descending: true},
			expected: []string{"Beta College", "Gamma College", "Alpha Institute"},
		},
		{
			name: "highest package ascending breaks ties by ranking",
			opts: ListOptions{SortBy: SortByHighestPackage},
			// Beta and Gamma share the package; Gamma outranks Beta.
			expected: []string{"Gamma College", "Beta College", "Alpha Institute"},
		},
		{
			name:     "highest package descending keeps tiebreak ascending",
			opts:     ListOptions{SortBy: SortByHighestPackage, Descending: true},
			expected: []string{"Alpha Institute", "Gamma College", "Beta College"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(store.List(tt.opts)))
		})
	}
}

func TestListCategoryFilter(t *testing.T) {
	store := newTestStore(t)

	assert.Len(t, store.List(ListOptions{Category: models.CategoryAll}), 3)
	assert.Len(t, store.List(ListOptions{Category: models.CategoryOC}), 3)
	assert.Empty(t, store.List(ListOptions{Category: models.Category("XYZ")}))
}

func TestListReturnsSnapshots(t *testing.T) {
	store := newTestStore(t)

	first := store.List(ListOptions{})
	first[0].Name = "Mutated"
	first[0].Courses[0].Cutoffs[models.CategoryOC] = 0

	second := store.List(ListOptions{})
	assert.Equal(t, "Alpha Institute", second[0].Name)
	cutoff, ok := second[0].Courses[0].Cutoff(models.CategoryOC)
	require.True(t, ok)
	assert.Equal(t, 199.0, cutoff)
}

func TestCourseLookup(t *testing.T) {
	store := newTestStore(t)

	college, course, err := store.Course(1, 12)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Institute", college.Name)
	assert.Equal(t, "Mechanical Engineering", course.Name)

	_, _, err = store.Course(99, 12)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCollegeNotFound))

	_, _, err = store.Course(1, 99)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCourseNotFound))
}
