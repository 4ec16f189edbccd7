package platform

// Package platform wraps OS-specific concerns: locating the data directory,
// importing marker images into it, and revealing files in the system file
// manager.
