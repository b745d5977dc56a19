// internal/catalog/store.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"college-compass/internal/common/errors"
	"college-compass/internal/common/logger"
	"college-compass/internal/common/validation"
	"college-compass/internal/models"
)

// SortKey selects the primary sort column for listings.
type SortKey string

const (
	SortByRanking        SortKey = "ranking"
	SortByHighestPackage SortKey = "highestPackage"
)

// ListOptions controls filtering and ordering of List.
type ListOptions struct {
	Category   models.Category // CategoryAll retains every college
	SortBy     SortKey
	Descending bool
}

// Store holds the static college catalog, loaded once and never mutated.
type Store struct {
	colleges []models.College
	logger   logger.Logger
}

// Load reads, schema-checks, and decodes the catalog dataset. Any violation
// of the dataset contract fails startup.
func Load(path string, log logger.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(err)
	}
	return Parse(raw, log)
}

// Parse builds a Store from raw dataset bytes.
func Parse(raw []byte, log logger.Logger) (*Store, error) {
	if err := validateDataset(raw); err != nil {
		return nil, err
	}

	var colleges []models.College
	if err := json.Unmarshal(raw, &colleges); err != nil {
		return nil, errors.NewCatalogLoadFailedError(err)
	}

	if err := checkInvariants(colleges); err != nil {
		return nil, err
	}

	log.Info("catalog loaded", map[string]interface{}{
		"colleges": len(colleges),
	})

	return &Store{colleges: colleges, logger: log}, nil
}

func validateDataset(raw []byte) error {
	violations, err := validation.CheckDocument(datasetSchema, raw)
	if err != nil {
		return errors.NewCatalogLoadFailedError(err)
	}
	if len(violations) > 0 {
		return errors.NewCatalogSchemaFailedError(strings.Join(violations, "; "))
	}
	return nil
}

// checkInvariants enforces uniqueness rules the schema cannot express:
// college ids, codes, and rankings unique across the catalog, course ids
// unique within each college.
func checkInvariants(colleges []models.College) error {
	ids := make(map[int]bool, len(colleges))
	codes := make(map[int]bool, len(colleges))
	rankings := make(map[int]bool, len(colleges))

	for _, college := range colleges {
		if ids[college.ID] {
			return errors.NewCatalogSchemaFailedError(fmt.Sprintf("duplicate college id %d", college.ID))
		}
		if codes[college.Code] {
			return errors.NewCatalogSchemaFailedError(fmt.Sprintf("duplicate college code %d", college.Code))
		}
		if rankings[college.Ranking] {
			return errors.NewCatalogSchemaFailedError(fmt.Sprintf("duplicate college ranking %d", college.Ranking))
		}
		ids[college.ID] = true
		codes[college.Code] = true
		rankings[college.Ranking] = true

		courseIDs := make(map[int]bool, len(college.Courses))
		for _, course := range college.Courses {
			if courseIDs[course.ID] {
				return errors.NewCatalogSchemaFailedError(
					fmt.Sprintf("duplicate course id %d in college %d", course.ID, college.ID))
			}
			courseIDs[course.ID] = true
		}
	}

	return nil
}

// List returns deep-copied colleges, filtered and ordered per opts. The sort
// is stable with ranking as tiebreaker, ascending ranking by default.
func (s *Store) List(opts ListOptions) []models.College {
	out := make([]models.College, 0, len(s.colleges))
	for _, college := range s.colleges {
		if !s.matchesCategory(college, opts.Category) {
			continue
		}
		out = append(out, college.Clone())
	}

	key := opts.SortBy
	if key == "" {
		key = SortByRanking
	}

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch key {
		case SortByHighestPackage:
			if out[i].HighestPackage == out[j].HighestPackage {
				return out[i].Ranking < out[j].Ranking
			}
			less = out[i].HighestPackage < out[j].HighestPackage
		default:
			if out[i].Ranking == out[j].Ranking {
				return false
			}
			less = out[i].Ranking < out[j].Ranking
		}
		if opts.Descending {
			return !less
		}
		return less
	})

	return out
}

func (s *Store) matchesCategory(college models.College, cat models.Category) bool {
	if cat == "" || cat == models.CategoryAll {
		return true
	}
	for _, course := range college.Courses {
		if _, ok := course.Cutoff(cat); ok {
			return true
		}
	}
	return false
}

// College returns a deep-copied college snapshot by id.
func (s *Store) College(id int) (models.College, error) {
	for _, college := range s.colleges {
		if college.ID == id {
			return college.Clone(), nil
		}
	}
	return models.College{}, errors.NewCollegeNotFoundError(id)
}

// Course returns deep-copied college and course snapshots.
func (s *Store) Course(collegeID, courseID int) (models.College, models.Course, error) {
	college, err := s.College(collegeID)
	if err != nil {
		return models.College{}, models.Course{}, err
	}
	course, ok := college.Course(courseID)
	if !ok {
		return models.College{}, models.Course{}, errors.NewCourseNotFoundError(collegeID, courseID)
	}
	return college, course, nil
}

// Len reports the number of colleges in the catalog.
func (s *Store) Len() int {
	return len(s.colleges)
}
