package codec

import "fmt"

// ParseError reports bytes that are not syntactically valid for the format.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s file: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadError reports a failure to read the file's bytes at all.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ShapeError reports a decoded value that is not a sequence of questions.
// Index is -1 when the top-level value itself has the wrong shape.
type ShapeError struct {
	Index int
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return "invalid file format: expected an array of questions"
	}
	return fmt.Sprintf("invalid file format: question %d: %v", e.Index, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }
