// Package registry implements the two domain-facing catalogs the planner
// dispatches against: Actions (name -> effect function) and Methods (task
// name -> ordered decomposer candidates). Both build a catalog from an
// ordered entry list, accumulating declarations rather than replacing the
// whole catalog on each call.
package registry

import "errors"

// ErrInvalidDuration is returned by Actions.DeclareTemporal when an entry
// carries an unparsable duration, fatal at declaration time.
var ErrInvalidDuration = errors.New("registry: invalid temporal action duration")

// ErrNilEffect is returned when an ActionEntry/TemporalEntry carries a nil
// effect function.
var ErrNilEffect = errors.New("registry: nil effect function")

// ErrNilDecomposer is returned when DeclareTaskMethods is given a nil
// decomposer.
var ErrNilDecomposer = errors.New("registry: nil decomposer")
