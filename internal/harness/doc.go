// Package harness provides a declarative conformance harness for the
// catalog. Scenarios run a step sequence against a fresh session and
// assert on the final collection, view, and save behavior. Each run uses
// an in-memory SQLite database and a sequential ID generator, so traces
// are reproducible and suitable for golden file comparison.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	initial:
//	  - { title: Dune, author: Frank Herbert, year: "1965" }
//	steps:
//	  - add: { title: Hyperion, author: Dan Simmons, year: "1989" }
//	  - delete: { position: 1 }
//	  - edit: { position: 1, title: New Title }
//	  - search: { term: dune }
//	  - page: { number: 2 }
//	assertions:
//	  - type: collection_size
//	    count: 1
//	  - type: record_at
//	    position: 1
//	    expect: { title: Hyperion, author: Dan Simmons, year: "1989" }
//	  - type: view
//	    page: 1
//	    matches: 1
//	    total_pages: 1
//	    titles: [Hyperion]
//	  - type: save_count
//	    count: 2
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - collection_size: The full collection has exactly N records
//   - record_at: The record at a 1-based position matches expected fields
//   - view: The current view's page, matches, total_pages, and titles match
//   - save_count: Exactly N saves reached the store during the run
//
// Positions are 1-based over the full collection, not the filtered view.
// Delete and edit steps addressing a position past the end are recorded
// in the trace as not applied and change nothing.
//
// # Usage
//
// Load a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/add_browse_delete.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Execute:
//
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
