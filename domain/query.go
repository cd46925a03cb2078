package domain

import "regexp"

// PathSeparator joins nested record keys into the dotted path a
// [Condition] key fragment is matched against. A condition whose key is
// exactly the separator matches every path.
const PathSeparator = "."

// Op is the boolean operator joining a query node to its next sibling in
// the parent group. The operator is stored on the left operand; the last
// node of a group carries the zero value, which evaluates as [OpAnd].
type Op int

const (
	// OpAnd narrows: the next sibling is evaluated against the records
	// that survived so far.
	OpAnd Op = iota
	// OpOr widens: the next sibling is evaluated against the full set
	// the group received and its matches are unioned in.
	OpOr
)

// Kind discriminates the value predicate carried by a [Condition].
type Kind int

const (
	// KindNone marks a condition without a value. Key existence is
	// sufficient for a match.
	KindNone Kind = iota
	// KindText marks a plain case-insensitive substring predicate.
	KindText
	// KindRegex marks a compiled regular expression predicate.
	KindRegex
	// KindRange marks a numeric range predicate.
	KindRange
)

// Range is an inclusive numeric interval. A nil bound is absent; a bound
// of exactly zero is a valid, present bound.
type Range struct {
	Min *float64
	Max *float64
}

// Node is a query tree node, either a *[Condition] or a *[Group].
type Node interface {
	// NextOp returns the boolean operator joining this node to its next
	// sibling.
	NextOp() Op
	// SetNextOp sets the boolean operator joining this node to its next
	// sibling.
	SetNextOp(Op)
}

// Condition is a leaf query node. Exactly one of the value fields is
// meaningful at evaluation time, selected by Kind.
type Condition struct {
	// Key is a fragment matched as a substring of the dotted lowercase
	// path of nested record keys. Empty means any key.
	Key string
	// Kind selects the value predicate.
	Kind Kind
	// Text is the plain predicate for [KindText]. It may be the empty
	// string, which an explicit "" literal produces.
	Text string
	// Pattern is the compiled predicate for [KindRegex].
	Pattern *regexp.Regexp
	// Range is the numeric predicate for [KindRange].
	Range *Range
	// Negated inverts the match result of this leaf.
	Negated bool
	// Op joins this node to its next sibling.
	Op Op
}

// NextOp implements [Node].
func (c *Condition) NextOp() Op { return c.Op }

// SetNextOp implements [Node].
func (c *Condition) SetNextOp(op Op) { c.Op = op }

// Group is an internal query node holding an ordered sequence of child
// nodes. A group with no children matches everything, or nothing when
// negated.
type Group struct {
	// Children are the group members in authored order.
	Children []Node
	// Negated complements the group result within the candidate set the
	// group was evaluated against, not the universal record set.
	Negated bool
	// Op joins this group to its next sibling.
	Op Op
}

// NextOp implements [Node].
func (g *Group) NextOp() Op { return g.Op }

// SetNextOp implements [Node].
func (g *Group) SetNextOp(op Op) { g.Op = op }

// TokenKind identifies the syntactic unit a [Token] carries.
type TokenKind int

const (
	// TokenGroupOpen is an opening parenthesis.
	TokenGroupOpen TokenKind = iota
	// TokenGroupClose is a closing parenthesis.
	TokenGroupClose
	// TokenNot is the negation keyword applying to the next clause or
	// group.
	TokenNot
	// TokenAnd is the boolean AND keyword.
	TokenAnd
	// TokenOr is the boolean OR keyword.
	TokenOr
	// TokenKey is a field fragment terminated by the separator, with an
	// optional type marker.
	TokenKey
	// TokenValue is a quoted or unquoted value run.
	TokenValue
)

// Token is one syntactic unit of a query string, produced in authored
// order by a [Tokenizer]. Escape sequences are already stripped from
// Text.
type Token struct {
	Kind TokenKind
	// Text is the unescaped token text for [TokenKey] and [TokenValue].
	Text string
	// Marker is the type marker preceding the separator: 0 for none,
	// '*' for regular expressions, '~' for numeric ranges.
	Marker rune
	// Quoted reports whether a [TokenValue] was double-quoted. An empty
	// quoted value is an explicit empty string, not an absent value.
	Quoted bool
}
