// Package fileutil holds file permission constants for generated output.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for generated spec files,
// which may contain captured API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for output files explicitly
// intended to be shared with build tools and other users.
const ReadableByAll os.FileMode = 0o644
