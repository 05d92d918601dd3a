// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractedPassage is the predicate function for extractedpassage builders.
type ExtractedPassage func(*sql.Selector)

// ExtractedQuestion is the predicate function for extractedquestion builders.
type ExtractedQuestion func(*sql.Selector)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// JobPage is the predicate function for jobpage builders.
type JobPage func(*sql.Selector)

// Passage is the predicate function for passage builders.
type Passage func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Test is the predicate function for test builders.
type Test func(*sql.Selector)

// TestModule is the predicate function for testmodule builders.
type TestModule func(*sql.Selector)
