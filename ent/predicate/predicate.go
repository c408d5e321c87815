// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// MultiResult is the predicate function for multiresult builders.
type MultiResult func(*sql.Selector)

// Nonce is the predicate function for nonce builders.
type Nonce func(*sql.Selector)

// OldParam is the predicate function for oldparam builders.
type OldParam func(*sql.Selector)

// Orchestrator is the predicate function for orchestrator builders.
type Orchestrator func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// Result is the predicate function for result builders.
type Result func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Stat is the predicate function for stat builders.
type Stat func(*sql.Selector)

// Test is the predicate function for test builders.
type Test func(*sql.Selector)
