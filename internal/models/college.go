// internal/models/college.go
package models

// Category is one of the five admission-quota classes used as cutoff keys.
type Category string

const (
	CategoryOC  Category = "OC"
	CategoryMBC Category = "MBC"
	CategoryBC  Category = "BC"
	CategoryBCM Category = "BCM"
	CategorySC  Category = "SC"

	// CategoryAll is a filter sentinel only. It is never a cutoff key and an
	// insight request must name a concrete category.
	CategoryAll Category = "ALL"
)

// Categories lists the concrete admission categories in display order.
func Categories() []Category {
	return []Category{CategoryOC, CategoryMBC, CategoryBC, CategoryBCM, CategorySC}
}

// IsConcrete reports whether c is one of the five real categories.
func (c Category) IsConcrete() bool {
	switch c {
	case CategoryOC, CategoryMBC, CategoryBC, CategoryBCM, CategorySC:
		return true
	}
	return false
}

// Course is owned by exactly one college and immutable after catalog load.
type Course struct {
	ID      int                  `json:"id"`
	Name    string               `json:"name"`
	Cutoffs map[Category]float64 `json:"cutoffs"`
}

// Cutoff returns the course cutoff for a concrete category.
func (c Course) Cutoff(cat Category) (float64, bool) {
	v, ok := c.Cutoffs[cat]
	return v, ok
}

// Clone returns a deep copy of the course including its cutoff map.
func (c Course) Clone() Course {
	out := c
	out.Cutoffs = make(map[Category]float64, len(c.Cutoffs))
	for k, v := range c.Cutoffs {
		out.Cutoffs[k] = v
	}
	return out
}

// College is a catalog record, immutable after load.
type College struct {
	ID             int      `json:"id"`
	Code           int      `json:"code"`
	Name           string   `json:"name"`
	Ranking        int      `json:"ranking"`
	HighestPackage float64  `json:"highestPackage"`
	Description    string   `json:"description"`
	Image          string   `json:"image,omitempty"`
	Courses        []Course `json:"courses"`
}

// Clone returns a deep copy so catalog snapshots cannot alias store state.
func (c College) Clone() College {
	out := c
	out.Courses = make([]Course, len(c.Courses))
	for i, course := range c.Courses {
		out.Courses[i] = course.Clone()
	}
	return out
}

// Course returns the college's course with the given id.
func (c College) Course(id int) (Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}
