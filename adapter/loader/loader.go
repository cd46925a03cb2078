// Package loader reads JSON record collections into documents ready for
// searching. It is glue around the engine: the search core itself
// performs no I/O.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dolmen-go/contextio"
	"github.com/google/uuid"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/data"
)

// Load reads a JSON array of objects from r and converts each element
// into a [domain.Document]. The reader is wrapped with context-aware
// I/O, so canceling ctx aborts a long corpus load between reads.
func Load(ctx context.Context, r io.Reader, options ...Option) ([]domain.Document, error) {
	var opts Options
	for _, option := range options {
		option(&opts)
	}

	raw, err := io.ReadAll(contextio.NewReader(ctx, r))
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	docs := make([]domain.Document, len(records))
	for i, record := range records {
		doc, err := data.NewDocument(record)
		if err != nil {
			return nil, err
		}
		if opts.IDField != "" && !doc.Has(opts.IDField) {
			doc.Set(opts.IDField, uuid.NewString())
		}
		docs[i] = doc
	}
	return docs, nil
}

// Options contains parameters for customizing record loading.
type Options struct {
	// IDField, when set, is stamped with a generated unique identifier
	// on every loaded record that does not already carry it.
	IDField string
}

// Option configures loading behavior through the functional options
// pattern.
type Option func(*Options)

// WithIDField sets the field stamped with a generated identifier on
// records missing it, giving results a stable identity across loads.
func WithIDField(field string) Option {
	return func(o *Options) {
		o.IDField = field
	}
}
