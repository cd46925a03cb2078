package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

func parse(query string) *domain.Group {
	return NewParser().Parse(query)
}

func condition(t *testing.T, n domain.Node) *domain.Condition {
	t.Helper()
	c, ok := n.(*domain.Condition)
	require.True(t, ok, "expected condition, got %T", n)
	return c
}

func group(t *testing.T, n domain.Node) *domain.Group {
	t.Helper()
	g, ok := n.(*domain.Group)
	require.True(t, ok, "expected group, got %T", n)
	return g
}

func TestSingleClause(t *testing.T) {
	root := parse("name:jane")
	require.Len(t, root.Children, 1)
	c := condition(t, root.Children[0])
	assert.Equal(t, "name", c.Key)
	assert.Equal(t, domain.KindText, c.Kind)
	assert.Equal(t, "jane", c.Text)
	assert.False(t, c.Negated)
}

func TestOperatorsAttachToLeftSibling(t *testing.T) {
	root := parse("a and b or c")
	require.Len(t, root.Children, 3)
	assert.Equal(t, domain.OpAnd, root.Children[0].NextOp())
	assert.Equal(t, domain.OpOr, root.Children[1].NextOp())
	// right-open end: the last sibling carries the default
	assert.Equal(t, domain.OpAnd, root.Children[2].NextOp())
}

func TestImplicitAndBetweenClauses(t *testing.T) {
	root := parse("a b")
	require.Len(t, root.Children, 2)
	assert.Equal(t, domain.OpAnd, root.Children[0].NextOp())
}

func TestBareTermBecomesKey(t *testing.T) {
	root := parse("foo")
	c := condition(t, root.Children[0])
	assert.Equal(t, "foo", c.Key)
	assert.Equal(t, domain.KindNone, c.Kind)
}

func TestQuotedBareTermForcesValueMatching(t *testing.T) {
	root := parse(`"foo"`)
	c := condition(t, root.Children[0])
	assert.Equal(t, domain.PathSeparator, c.Key)
	assert.Equal(t, domain.KindText, c.Kind)
	assert.Equal(t, "foo", c.Text)
}

func TestNestedGroups(t *testing.T) {
	root := parse("(a or b) and c")
	require.Len(t, root.Children, 2)

	inner := group(t, root.Children[0])
	assert.Equal(t, domain.OpAnd, inner.NextOp())
	require.Len(t, inner.Children, 2)
	assert.Equal(t, domain.OpOr, inner.Children[0].NextOp())

	c := condition(t, root.Children[1])
	assert.Equal(t, "c", c.Key)
}

func TestGroupNegation(t *testing.T) {
	root := parse("not(a)")
	inner := group(t, root.Children[0])
	assert.True(t, inner.Negated)
	require.Len(t, inner.Children, 1)
	assert.False(t, condition(t, inner.Children[0]).Negated)
}

func TestConditionNegation(t *testing.T) {
	root := parse("not a and b")
	require.Len(t, root.Children, 2)
	assert.True(t, condition(t, root.Children[0]).Negated)
	assert.False(t, condition(t, root.Children[1]).Negated)
}

func TestEmptyGroupIsRetained(t *testing.T) {
	root := parse("not()")
	inner := group(t, root.Children[0])
	assert.True(t, inner.Negated)
	assert.Empty(t, inner.Children)
}

func TestUnbalancedOpensExtendToEndOfInput(t *testing.T) {
	root := parse("((a")
	outer := group(t, root.Children[0])
	inner := group(t, outer.Children[0])
	require.Len(t, inner.Children, 1)
	assert.Equal(t, "a", condition(t, inner.Children[0]).Key)
}

func TestUnmatchedClosesAreIgnored(t *testing.T) {
	root := parse("a) and b)")
	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", condition(t, root.Children[0]).Key)
	assert.Equal(t, "b", condition(t, root.Children[1]).Key)
}

func TestStraySeparatorIsSuppressed(t *testing.T) {
	root := parse(":")
	assert.Empty(t, root.Children)
}

func TestLeadingOperatorIsDropped(t *testing.T) {
	root := parse("and a")
	require.Len(t, root.Children, 1)
	assert.Equal(t, "a", condition(t, root.Children[0]).Key)
}

func TestValueAttachesAcrossWhitespace(t *testing.T) {
	root := parse("age~: 25-35")
	require.Len(t, root.Children, 1)
	c := condition(t, root.Children[0])
	assert.Equal(t, "age", c.Key)
	assert.Equal(t, domain.KindRange, c.Kind)
}

func TestKeyOnlyClauseBeforeOperator(t *testing.T) {
	// "name:" has no value; "and" stays an operator
	root := parse("name: and age")
	require.Len(t, root.Children, 2)
	first := condition(t, root.Children[0])
	assert.Equal(t, "name", first.Key)
	assert.Equal(t, domain.KindNone, first.Kind)
	assert.Equal(t, domain.OpAnd, first.NextOp())
}

func TestOperatorOnGroupSibling(t *testing.T) {
	root := parse("(a) or b")
	require.Len(t, root.Children, 2)
	assert.Equal(t, domain.OpOr, root.Children[0].NextOp())
}

type tokenizerMock struct{ mock.Mock }

// Tokenize implements domain.Tokenizer.
func (t *tokenizerMock) Tokenize(query string) []domain.Token {
	return t.Called(query).Get(0).([]domain.Token)
}

func TestCustomTokenizer(t *testing.T) {
	tkn := new(tokenizerMock)
	tkn.On("Tokenize", "q").
		Return([]domain.Token{{Kind: domain.TokenValue, Text: "a"}}).
		Once()

	root := NewParser(WithTokenizer(tkn)).Parse("q")

	require.Len(t, root.Children, 1)
	assert.Equal(t, "a", condition(t, root.Children[0]).Key)
	tkn.AssertExpectations(t)
}
