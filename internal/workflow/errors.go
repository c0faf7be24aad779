// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"
	"strings"

	"github.com/pdiddy/brand-engine/internal/store"
)

// ErrNotFound reports an unknown project id. It is the store's sentinel so
// callers can match it regardless of which layer surfaced it.
var ErrNotFound = store.ErrNotFound

// ErrPrecondition reports an operation attempted out of required stage
// order (e.g. generating assets before a strategy exists).
var ErrPrecondition = fmt.Errorf("operation out of stage order")

// ErrInvalidAssetType reports a request for an asset type outside the
// canonical set.
var ErrInvalidAssetType = fmt.Errorf("invalid asset type")

// ValidationError reports missing required intake fields. It carries the
// offending field names so the transport layer can echo them back.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid business input: missing %s", strings.Join(e.Fields, ", "))
}

// GenerationError reports an upstream strategy generation failure: the
// text service failed or returned an unparsable structure. The project is
// left untouched when this is returned.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("strategy generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
