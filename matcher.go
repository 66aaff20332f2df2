package htmltable

import (
	"regexp"
	"strings"
)

// Matcher is a textual-match predicate: either a plain substring test or a
// compiled regular expression search. It is a sum type in spirit (spec §9
// "Design Notes" calls for Literal(string) | Pattern(compiled-regex) rather
// than a duck-typed object), modeled here as a small interface with two
// exported implementations, sealed by the unexported matcher method, rather
// than an exported enum, the same shape
// the teacher uses for its Expr/Shape sum types (chtml/expr.go,
// chtml/shape.go): one interface, a handful of concrete value types, no
// reflection-based dispatch.
type Matcher interface {
	// MatchString reports whether s contains/matches the predicate.
	MatchString(s string) bool

	matcher()
}

// Literal matches by case-sensitive substring test.
type Literal string

func (l Literal) MatchString(s string) bool { return strings.Contains(s, string(l)) }
func (Literal) matcher()                    {}

// Pattern matches by regex search (not full-match): the pattern may match
// anywhere within s.
type Pattern struct {
	Re *regexp.Regexp
}

func (p Pattern) MatchString(s string) bool { return p.Re.MatchString(s) }
func (Pattern) matcher()                    {}

var (
	_ Matcher = Literal("")
	_ Matcher = Pattern{}
)
