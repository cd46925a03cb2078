// Package evaluator contains the default [domain.Evaluator]
// implementation, folding the query tree over sets of candidate records.
package evaluator

import (
	"maps"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/matcher"
)

// Evaluator implements [domain.Evaluator].
type Evaluator struct {
	matcher domain.Matcher
}

// NewEvaluator returns a new implementation of [domain.Evaluator].
func NewEvaluator(options ...Option) domain.Evaluator {
	e := &Evaluator{}
	for _, option := range options {
		option(e)
	}
	if e.matcher == nil {
		e.matcher = matcher.NewMatcher()
	}
	return e
}

// set holds candidate positions in the record list, keeping membership
// and union O(1) per element while the original order stays recoverable
// from the positions.
type set map[int]struct{}

// Evaluate implements [domain.Evaluator]. Surviving records come back in
// their original relative order.
func (e *Evaluator) Evaluate(group *domain.Group, docs []domain.Document) []domain.Document {
	in := make(set, len(docs))
	for i := range docs {
		in[i] = struct{}{}
	}
	out := e.group(group, docs, in)
	res := make([]domain.Document, 0, len(out))
	for i := range docs {
		if _, ok := out[i]; ok {
			res = append(res, docs[i])
		}
	}
	return res
}

func (e *Evaluator) group(g *domain.Group, docs []domain.Document, in set) set {
	if len(g.Children) == 0 {
		// () matches everything, not() matches nothing
		if g.Negated {
			return set{}
		}
		return maps.Clone(in)
	}

	acc := e.node(g.Children[0], docs, in)
	prev := g.Children[0]
	for _, child := range g.Children[1:] {
		if prev.NextOp() == domain.OpOr {
			// OR widens against the full incoming set
			for i := range e.node(child, docs, in) {
				acc[i] = struct{}{}
			}
		} else {
			// AND narrows: only survivors are tested again
			acc = e.node(child, docs, acc)
		}
		prev = child
	}

	if g.Negated {
		// complement within the incoming set, not the universe; this
		// keeps negation scoped to the group that asked for it
		comp := make(set, len(in))
		for i := range in {
			if _, ok := acc[i]; !ok {
				comp[i] = struct{}{}
			}
		}
		return comp
	}
	return acc
}

func (e *Evaluator) node(n domain.Node, docs []domain.Document, in set) set {
	switch t := n.(type) {
	case *domain.Group:
		return e.group(t, docs, in)
	case *domain.Condition:
		out := make(set, len(in))
		for i := range in {
			if e.matcher.Matches(docs[i], t) != t.Negated {
				out[i] = struct{}{}
			}
		}
		return out
	}
	return set{}
}
