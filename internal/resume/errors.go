package resume

import "errors"

// ErrNotLoaded is returned by accessors when the resume file was missing or
// unparseable at startup.
var ErrNotLoaded = errors.New("resume not loaded")
