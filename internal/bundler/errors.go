package bundler

import "fmt"

// Kind is the error taxonomy from the bundler's failure-semantics
// table: each layer that returns an error picks one of these and
// attaches the resource it was operating on.
type Kind int

const (
	KindPathNotFound Kind = iota
	KindParseError
	KindIoError
	KindManifestError
	KindMissingLibraryRoot
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindPathNotFound:
		return "PathNotFound"
	case KindParseError:
		return "ParseError"
	case KindIoError:
		return "IoError"
	case KindManifestError:
		return "ManifestError"
	case KindMissingLibraryRoot:
		return "MissingLibraryRoot"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error carries a Kind plus one line of context identifying the file
// or directory in play. It is created where the failure happens; the
// phases and the Driver return it unchanged, without adding further
// context lines of their own.
type Error struct {
	Kind    Kind
	Context string
	Err     error
}

func newError(kind Kind, context string, err error) *Error {
	return &Error{Kind: kind, Context: context, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error { return e.Err }
