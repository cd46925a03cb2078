package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

func normalize(marker rune, key, value string, hasValue bool) *domain.Condition {
	return NewNormalizer().Normalize(false, marker, key, value, hasValue)
}

func TestPlainValue(t *testing.T) {
	c := normalize(0, "name", "jane", true)
	assert.Equal(t, "name", c.Key)
	assert.Equal(t, domain.KindText, c.Kind)
	assert.Equal(t, "jane", c.Text)
}

func TestExplicitEmptyValue(t *testing.T) {
	// "" is a present, empty predicate, not an absent one
	c := normalize(0, "name", "", true)
	assert.Equal(t, domain.KindText, c.Kind)
	assert.Empty(t, c.Text)
}

func TestAbsentValue(t *testing.T) {
	c := normalize(0, "name", "", false)
	assert.Equal(t, domain.KindNone, c.Kind)
}

func TestNegated(t *testing.T) {
	c := NewNormalizer().Normalize(true, 0, "name", "jane", true)
	assert.True(t, c.Negated)
}

func TestRegex(t *testing.T) {
	c := normalize('*', "name", "^ja.*e$", true)
	require.Equal(t, domain.KindRegex, c.Kind)
	require.NotNil(t, c.Pattern)
	assert.True(t, c.Pattern.MatchString("jane"))
	// compiled case-insensitive: the record value may be any case even
	// though the query text is lowercased up front
	assert.True(t, c.Pattern.MatchString("JANE"))
	assert.False(t, c.Pattern.MatchString("mary"))
}

func TestMalformedRegexDegradesToKeyExistence(t *testing.T) {
	c := normalize('*', "name", "ja(ne", true)
	assert.Equal(t, domain.KindNone, c.Kind)
	assert.Nil(t, c.Pattern)
	assert.Equal(t, "name", c.Key)
}

func TestRangeBothBounds(t *testing.T) {
	c := normalize('~', "age", "25-35", true)
	require.Equal(t, domain.KindRange, c.Kind)
	require.NotNil(t, c.Range)
	require.NotNil(t, c.Range.Min)
	require.NotNil(t, c.Range.Max)
	assert.Equal(t, 25.0, *c.Range.Min)
	assert.Equal(t, 35.0, *c.Range.Max)
}

func TestRangeOpenEnds(t *testing.T) {
	c := normalize('~', "age", "30-", true)
	require.Equal(t, domain.KindRange, c.Kind)
	require.NotNil(t, c.Range.Min)
	assert.Equal(t, 30.0, *c.Range.Min)
	assert.Nil(t, c.Range.Max)

	c = normalize('~', "age", "-35", true)
	require.Equal(t, domain.KindRange, c.Kind)
	assert.Nil(t, c.Range.Min)
	require.NotNil(t, c.Range.Max)
	assert.Equal(t, 35.0, *c.Range.Max)
}

func TestRangeZeroBoundIsPresent(t *testing.T) {
	// zero is a real bound, distinct from absent
	c := normalize('~', "balance", "0-", true)
	require.Equal(t, domain.KindRange, c.Kind)
	require.NotNil(t, c.Range.Min)
	assert.Equal(t, 0.0, *c.Range.Min)
	assert.Nil(t, c.Range.Max)
}

func TestRangeJunkAroundBounds(t *testing.T) {
	c := normalize('~', "price", "$10.50 - $20", true)
	require.Equal(t, domain.KindRange, c.Kind)
	assert.Equal(t, 10.5, *c.Range.Min)
	assert.Equal(t, 20.0, *c.Range.Max)
}

func TestRangeNegativeBounds(t *testing.T) {
	c := normalize('~', "temp", "-10-5", true)
	require.Equal(t, domain.KindRange, c.Kind)
	assert.Equal(t, -10.0, *c.Range.Min)
	assert.Equal(t, 5.0, *c.Range.Max)
}

func TestRangeWithoutBoundsDegradesToKeyExistence(t *testing.T) {
	for _, value := range []string{"", "-", "abc", "a-b", "10-20-30"} {
		c := normalize('~', "age", value, true)
		assert.Equal(t, domain.KindNone, c.Kind, "value %q", value)
		assert.Nil(t, c.Range, "value %q", value)
	}
}
