// Package hql defines the fixed vocabulary of the HQL graph/vector query
// language: structural keywords, traversal and step names, scalar types, and
// aggregate functions.
//
// Both the generators and the re-formatter consult these tables, so the
// language surface is declared exactly once.
package hql

import "strings"

// Structural keywords.
const (
	KwQuery   = "QUERY"
	KwReturn  = "RETURN"
	KwDrop    = "DROP"
	KwUnique  = "UNIQUE"
	KwIndex   = "INDEX"
	KwDefault = "DEFAULT"
	KwExists  = "EXISTS"
	KwNow     = "NOW"

	// Schema block prefixes: N::Name, E::Name, V::Name.
	PrefixNode   = "N"
	PrefixEdge   = "E"
	PrefixVector = "V"
)

// Keywords lists every structural keyword of the language.
var Keywords = []string{
	KwQuery, KwReturn, KwDrop, KwUnique, KwIndex, KwDefault, KwExists, KwNow,
	PrefixNode, PrefixEdge, PrefixVector,
}

// Source origins and chainable step names.
const (
	StepAddN    = "AddN"
	StepAddE    = "AddE"
	StepAddV    = "AddV"
	StepUpsertN = "UpsertN"
	StepUpsertE = "UpsertE"
	StepUpsertV = "UpsertV"

	StepSearchV    = "SearchV"
	StepSearchBM25 = "SearchBM25"
	StepRerank     = "Rerank"
	StepPrefilter  = "PREFILTER"

	StepOut  = "Out"
	StepIn   = "In"
	StepOutE = "OutE"
	StepInE  = "InE"
	StepFrom = "From"
	StepTo   = "To"

	StepWhere   = "WHERE"
	StepOrder   = "ORDER"
	StepRange   = "RANGE"
	StepCount   = "COUNT"
	StepGroupBy = "GROUP_BY"

	StepShortestPath = "ShortestPath"

	StepID = "ID"

	OpEQ       = "EQ"
	OpNEQ      = "NEQ"
	OpGT       = "GT"
	OpGTE      = "GTE"
	OpLT       = "LT"
	OpLTE      = "LTE"
	OpContains = "CONTAINS"
)

// Steps lists every source origin, traversal step, and chained operator.
var Steps = []string{
	StepAddN, StepAddE, StepAddV, StepUpsertN, StepUpsertE, StepUpsertV,
	StepSearchV, StepSearchBM25, StepRerank, StepPrefilter,
	StepOut, StepIn, StepOutE, StepInE, StepFrom, StepTo,
	StepWhere, StepOrder, StepRange, StepCount, StepGroupBy,
	StepShortestPath, StepID,
	OpEQ, OpNEQ, OpGT, OpGTE, OpLT, OpLTE, OpContains,
}

// Aggregate functions. Min and Max are part of the vocabulary even though
// the current template catalogue emits no queries for them.
const (
	AggSum = "SUM"
	AggAvg = "AVG"
	AggMin = "MIN"
	AggMax = "MAX"
)

// Aggregates lists the aggregate function names.
var Aggregates = []string{AggSum, AggAvg, AggMin, AggMax}

// Order directions used as type parameters of the ORDER step.
const (
	OrderAsc  = "Asc"
	OrderDesc = "Desc"
)

// Reserved internal fields. Every instance carries these implicitly, so
// user-defined property names must not collide with them.
var (
	NodeReservedFields   = []string{"id", "label", "type", "version"}
	EdgeReservedFields   = []string{"id", "label", "to_node", "from_node", "type", "version"}
	VectorReservedFields = []string{"id", "label", "data", "score", "type", "version"}
)

// canonical maps the lower-cased form of every vocabulary token to its
// canonical spelling.
var canonical = buildCanonical()

func buildCanonical() map[string]string {
	m := make(map[string]string)
	for _, group := range [][]string{Keywords, Steps, Aggregates, {OrderAsc, OrderDesc}} {
		for _, tok := range group {
			m[strings.ToLower(tok)] = tok
		}
	}
	for _, s := range Scalars {
		m[strings.ToLower(string(s))] = string(s)
	}
	return m
}

// Canonical reports the canonical spelling of a vocabulary token, matched
// case-insensitively. The second result is false for identifiers that are
// not part of the language vocabulary.
func Canonical(tok string) (string, bool) {
	c, ok := canonical[strings.ToLower(tok)]
	return c, ok
}

// IsReserved reports whether name collides case-insensitively with any
// vocabulary token. Reserved names may not be used for entities.
func IsReserved(name string) bool {
	_, ok := canonical[strings.ToLower(name)]
	return ok
}
