// blockparty.go - a solver for the Block Party look-around puzzle.
// Copyright (C) 2026 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board or a requested
// operation.  It can produce an error message in English, but
// its main function is to let callers dispatch on what went
// wrong without parsing message strings.  It tells the caller
// "this thing failed to meet this condition", and provides
// supplemental details about the thing and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.  For validation errors this is the part of the
// board that failed; for solver errors it is the solve itself.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GeometryScope
	SegmentScope
	CellScope
	SolveScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.  There are named
// predicates for each way validation and solving can fail, and a
// "general" (arbitrary English string) predicate for runtime
// errors.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	OutOfBoundsCondition
	UncoveredCondition
	DoublyCoveredCondition
	GivenValueCondition
	TooFewPositionsCondition
	InfeasibleCondition
	TimeoutCondition
	UnsolvedCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	NamedAttribute
	PositionAttribute
	SegmentAttribute
	DimensionAttribute
	ValueAttribute
	GivenAttribute
	DeadlineAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the offending position) as well as
// the predicate itself (such as the allowed value range).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so error summaries can be persisted and
// returned to clients.  There is no good way to express this
// condition so the compiler can check it, so implementors have
// to do the right thing at runtime.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case GeometryScope:
		es = "Invalid geometry: "
	case SegmentScope:
		es = fmt.Sprintf("Problem in segment %v: ", nextVal())
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case SolveScope:
		es = "Solve failed: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case NamedAttribute:
			es += fmt.Sprint(nextVal())
		case PositionAttribute:
			es += "Position"
		case SegmentAttribute:
			es += "Segment"
		case DimensionAttribute:
			es += "Dimension"
		case ValueAttribute:
			es += "Value"
		case GivenAttribute:
			es += "Given value"
		case DeadlineAttribute:
			es += "Deadline"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case OutOfBoundsCondition:
		es += fmt.Sprintf("Lies outside the %v grid", nextVal())
	case UncoveredCondition:
		es += "No segment contains this cell"
	case DoublyCoveredCondition:
		es += fmt.Sprintf("Segments %v and %v both contain this cell", nextVal(), nextVal())
	case GivenValueCondition:
		es += fmt.Sprintf("Given value %v is outside the segment's range 1..%v", nextVal(), nextVal())
	case TooFewPositionsCondition:
		es += fmt.Sprintf("Need at least %v positions", nextVal())
	case InfeasibleCondition:
		es += "No assignment satisfies the constraints"
	case TimeoutCondition:
		es += "Solve did not finish in the allowed time"
	case UnsolvedCondition:
		es += "Board has not been solved"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

/*

Error predicates

*/

// condition pulls the ErrorCondition out of any error produced
// by this package, UnknownCondition otherwise.
func condition(err error) ErrorCondition {
	if e, ok := err.(Error); ok {
		return e.Condition
	}
	return UnknownCondition
}

// IsPartitionError reports whether err says the segments fail to
// tile the grid exactly.
func IsPartitionError(err error) bool {
	c := condition(err)
	return c == UncoveredCondition || c == DoublyCoveredCondition
}

// IsOutOfBoundsError reports whether err says a segment
// references a position off the grid.
func IsOutOfBoundsError(err error) bool {
	return condition(err) == OutOfBoundsCondition
}

// IsGivenValueError reports whether err says a given value falls
// outside its cell's domain.
func IsGivenValueError(err error) bool {
	return condition(err) == GivenValueCondition
}

// IsInfeasibleError reports whether err says the solver proved
// no assignment exists.
func IsInfeasibleError(err error) bool {
	return condition(err) == InfeasibleCondition
}

// IsTimeoutError reports whether err says the solve ran out of
// time.
func IsTimeoutError(err error) bool {
	return condition(err) == TimeoutCondition
}
