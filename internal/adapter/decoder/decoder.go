// Package decoder contains the default [domain.Decoder] implementation.
package decoder

import (
	"github.com/mitchellh/mapstructure"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

// Decoder implements [domain.Decoder].
type Decoder struct{}

// NewDecoder returns a new implementation of [domain.Decoder].
func NewDecoder() domain.Decoder {
	return &Decoder{}
}

// Decode implements [domain.Decoder].
func (d *Decoder) Decode(src any, tgt any) error {
	if tgt == nil {
		return &domain.ErrTargetNil{}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "seeq",
		Result:  tgt,
	})
	if err != nil {
		return domain.ErrDecode{Err: err}
	}
	if err := dec.Decode(src); err != nil {
		return domain.ErrDecode{Err: err}
	}
	return nil
}
