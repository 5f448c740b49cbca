package engine

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/katalvlaran/symnmf/config"
	"github.com/katalvlaran/symnmf/dataset"
	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

// Kind classifies a failure.
type Kind int

const (
	// KindInput covers bad arguments, unreadable or malformed data and
	// inconsistent vector dimensions.
	KindInput Kind = iota + 1
	// KindComputation covers degenerate matrices and failures inside a stage.
	KindComputation
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindComputation:
		return "computation error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrInput matches every *Error of KindInput via errors.Is.
	ErrInput = errors.New("engine: input error")
	// ErrComputation matches every *Error of KindComputation via errors.Is.
	ErrComputation = errors.New("engine: computation error")

	// ErrUnknownGoal indicates a goal outside sym, ddg, norm, symnmf.
	ErrUnknownGoal = errors.New("engine: unknown goal")
	// ErrInvalidK indicates a cluster count argument that is not an integer.
	ErrInvalidK = errors.New("engine: invalid cluster count")
)

// Error is the classified failure returned by the engine.
type Error struct {
	Kind Kind
	Op   string // stage that failed, e.g. "sym", "kmeans", "read"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInput:
		return e.Kind == KindInput
	case ErrComputation:
		return e.Kind == KindComputation
	}

	return false
}

// inputErrors are the causes classified as KindInput; everything else is
// KindComputation.
var inputErrors = []error{
	ErrUnknownGoal,
	ErrInvalidK,
	config.ErrInvalidConfig,
	config.ErrUnknownKey,
	dataset.ErrEmpty,
	dataset.ErrRaggedRows,
	dataset.ErrParse,
	similarity.ErrEmpty,
	similarity.ErrShape,
	matrix.ErrNaNInf,
	symnmf.ErrInvalidK,
	kmeans.ErrEmpty,
	kmeans.ErrShape,
	kmeans.ErrNonFinite,
	kmeans.ErrInvalidK,
}

// classify wraps err into an *Error tagged with op. Already classified
// errors pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ee *Error
	if errors.As(err, &ee) {
		return err
	}
	kind := KindComputation
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		kind = KindInput
	}
	for _, sentinel := range inputErrors {
		if errors.Is(err, sentinel) {
			kind = KindInput
			break
		}
	}

	return &Error{Kind: kind, Op: op, Err: err}
}
