package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIsConcrete(t *testing.T) {
	for _, cat := range Categories() {
		assert.True(t, cat.IsConcrete(), "category %s", cat)
	}
	assert.False(t, CategoryAll.IsConcrete())
	assert.False(t, Category("").IsConcrete())
	assert.False(t, Category("oc").IsConcrete())
}

func TestCollegeCloneIsDeep(t *testing.T) {
	original := College{
		ID:   1,
		Name: "Alpha Institute",
		Courses: []Course{{
			ID:      11,
			Name:    "Computer Science Engineering",
			Cutoffs: map[Category]float64{CategoryOC: 199},
		}},
	}

	clone := original.Clone()
	clone.Courses[0].Name = "Mutated"
	clone.Courses[0].Cutoffs[CategoryOC] = 0

	assert.Equal(t, "Computer Science Engineering", original.Courses[0].Name)
	cutoff, ok := original.Courses[0].Cutoff(CategoryOC)
	require.True(t, ok)
	assert.Equal(t, 199.0, cutoff)
}

func TestCollegeCourseLookup(t *testing.T) {
	college := College{Courses: []Course{{ID: 11, Name: "CSE"}, {ID: 12, Name: "ECE"}}}

	course, ok := college.Course(12)
	require.True(t, ok)
	assert.Equal(t, "ECE", course.Name)

	_, ok = college.Course(99)
	assert.False(t, ok)
}
