package outputs

import "errors"

// ErrDuplicateOutput reports two declarations with the same name under the
// same owning step. Registration happens once at startup, so this always
// surfaces before any step runs.
var ErrDuplicateOutput = errors.New("duplicate output declaration")

// ErrSourceRequired reports an ifnewer overwrite decision requested
// without a usable source file to compare against. It is scoped to the
// single save call that triggered it; the step continues and the output
// is reported as skipped.
var ErrSourceRequired = errors.New("ifnewer overwrite requires an existing source file")
