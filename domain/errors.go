package domain

import "fmt"

// ErrTargetNil is returned when the passed target, which should be a
// pointer, is passed as a nil value.
type ErrTargetNil struct{}

func (e *ErrTargetNil) Error() string { return "target interface is nil" }

// ErrRecordsType is returned when the records argument is neither nil nor
// a slice or array.
type ErrRecordsType struct {
	Type string
}

func (e ErrRecordsType) Error() string {
	return fmt.Sprintf("expected a slice or array of records, got %s", e.Type)
}

// ErrDocumentType is returned when a record element is a value that
// cannot be converted into a [Document].
type ErrDocumentType struct {
	Reason string
}

func (e ErrDocumentType) Error() string {
	return fmt.Sprintf("invalid record: %s", e.Reason)
}

// ErrDecode is returned by [Decoder.Decode] to easily wrap third party
// decoding errors.
type ErrDecode struct {
	Err error
}

func (e ErrDecode) Error() string { return fmt.Sprintf("decoding results: %v", e.Err) }

func (e ErrDecode) Unwrap() error { return e.Err }
