package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a declarative catalog test scenario.
// Scenarios run a sequence of steps against a fresh session and assert on
// the resulting collection, view, and persistence behavior.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden file
	// name when the scenario runs under RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Initial seeds the store before the session loads. Optional.
	Initial []RecordSpec `yaml:"initial,omitempty"`

	// Steps is the sequence of operations to run in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final session state.
	Assertions []Assertion `yaml:"assertions"`
}

// RecordSpec is a book record as written in scenario YAML. It also
// appears in golden snapshots, hence the json tags.
type RecordSpec struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Year   string `yaml:"year" json:"year"`
}

// Step is one scenario operation. Exactly one of the operation fields must
// be set; the others stay nil.
type Step struct {
	// Add appends a new record.
	Add *RecordSpec `yaml:"add,omitempty"`

	// Delete removes the record at a 1-based position in the full
	// collection. Out-of-range positions are dispatched anyway and are
	// expected to be no-ops.
	Delete *PositionSpec `yaml:"delete,omitempty"`

	// Edit replaces fields of the record at a 1-based position. Omitted
	// fields keep their current value.
	Edit *EditSpec `yaml:"edit,omitempty"`

	// Search sets the session's search term.
	Search *SearchSpec `yaml:"search,omitempty"`

	// Page sets the session's page number.
	Page *PageSpec `yaml:"page,omitempty"`
}

// PositionSpec addresses a record by 1-based position.
type PositionSpec struct {
	Position int `yaml:"position"`
}

// EditSpec addresses a record by position and carries field overrides.
// Pointer fields distinguish "not set" from "set to empty".
type EditSpec struct {
	Position int     `yaml:"position"`
	Title    *string `yaml:"title,omitempty"`
	Author   *string `yaml:"author,omitempty"`
	Year     *string `yaml:"year,omitempty"`
}

// SearchSpec carries a search term. An empty term clears the filter.
type SearchSpec struct {
	Term string `yaml:"term"`
}

// PageSpec carries a 1-based page number.
type PageSpec struct {
	Number int `yaml:"number"`
}

// Assertion validates the final state after all steps ran.
type Assertion struct {
	// Type specifies the assertion type:
	// - "collection_size": the full collection has exactly Count records
	// - "record_at": the record at Position matches Expect
	// - "view": the current view matches the page/matches/titles fields
	// - "save_count": exactly Count saves reached the store
	Type string `yaml:"type"`

	// Count is the expected count (collection_size, save_count).
	Count int `yaml:"count,omitempty"`

	// Position is the 1-based position (record_at).
	Position int `yaml:"position,omitempty"`

	// Expect is the expected record (record_at).
	Expect *RecordSpec `yaml:"expect,omitempty"`

	// View expectations. Matches and TotalPages use pointers so that an
	// explicit 0 is distinguishable from "not asserted".
	Page       int      `yaml:"page,omitempty"`
	Matches    *int     `yaml:"matches,omitempty"`
	TotalPages *int     `yaml:"total_pages,omitempty"`
	Titles     []string `yaml:"titles,omitempty"`
}

// Assertion type constants.
const (
	AssertCollectionSize = "collection_size"
	AssertRecordAt       = "record_at"
	AssertView           = "view"
	AssertSaveCount      = "save_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks that exactly one operation is set and its fields
// are usable.
func validateStep(index int, st *Step) error {
	set := 0
	if st.Add != nil {
		set++
	}
	if st.Delete != nil {
		set++
	}
	if st.Edit != nil {
		set++
	}
	if st.Search != nil {
		set++
	}
	if st.Page != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("steps[%d]: exactly one of add/delete/edit/search/page is required", index)
	}

	switch {
	case st.Add != nil:
		if st.Add.Title == "" || st.Add.Author == "" || st.Add.Year == "" {
			return fmt.Errorf("steps[%d].add: title, author and year are required", index)
		}
	case st.Delete != nil:
		if st.Delete.Position == 0 {
			return fmt.Errorf("steps[%d].delete: position is required", index)
		}
	case st.Edit != nil:
		if st.Edit.Position == 0 {
			return fmt.Errorf("steps[%d].edit: position is required", index)
		}
		if st.Edit.Title == nil && st.Edit.Author == nil && st.Edit.Year == nil {
			return fmt.Errorf("steps[%d].edit: at least one of title/author/year is required", index)
		}
	case st.Page != nil:
		if st.Page.Number == 0 {
			return fmt.Errorf("steps[%d].page: number is required", index)
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertCollectionSize:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for collection_size", index)
		}
	case AssertRecordAt:
		if a.Position < 1 {
			return fmt.Errorf("assertions[%d]: position is required for record_at", index)
		}
		if a.Expect == nil {
			return fmt.Errorf("assertions[%d]: expect is required for record_at", index)
		}
	case AssertView:
		if a.Page == 0 && a.Matches == nil && a.TotalPages == nil && a.Titles == nil {
			return fmt.Errorf("assertions[%d]: view assertion must check at least one field", index)
		}
	case AssertSaveCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for save_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
