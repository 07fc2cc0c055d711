// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PyramidSession is the predicate function for pyramidsession builders.
type PyramidSession func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
