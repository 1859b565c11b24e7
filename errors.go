package encindex

import "errors"

// Compilation errors are input-integrity violations. They are detected
// eagerly and abort the single index under compilation; other indices are
// unaffected. Callers match them with errors.Is, contextual wrapping uses
// fmt.Errorf("...: %w", ErrX).
var (
	// ErrDuplicatePointer signals a pointer assigned twice in one index.
	ErrDuplicatePointer = errors.New("encindex: duplicate pointer")

	// ErrDuplicateScalar signals a scalar assigned twice where the index
	// declares an injective mapping (single-byte indices only).
	ErrDuplicateScalar = errors.New("encindex: duplicate scalar")

	// ErrOutOfDomain signals a pointer or scalar outside its declared bounds,
	// including supplementary-plane scalars outside plane 2.
	ErrOutOfDomain = errors.New("encindex: value out of domain")

	// ErrAliasCollision signals an alias pointer or its placeholder scalar
	// colliding with an already-assigned one.
	ErrAliasCollision = errors.New("encindex: alias collision")

	// ErrRemapUnresolved signals a pointer inside the remap sub-range whose
	// scalar has no canonical counterpart outside the range.
	ErrRemapUnresolved = errors.New("encindex: remap target unresolved")

	// ErrTrieTooLarge signals that no block size produced a lower table
	// below the configured ceiling.
	ErrTrieTooLarge = errors.New("encindex: no trie block size satisfies lower-table limit")

	// ErrNotSorted signals range breakpoints that are not strictly
	// increasing in both coordinates.
	ErrNotSorted = errors.New("encindex: range breakpoints not sorted")
)
