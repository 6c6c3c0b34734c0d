package filesink

import "time"

// CleanPolicy decides whether an existing backup file should be pruned.
// It is consulted on each write cycle against the directory's backup
// set, never against the currently open file.
type CleanPolicy interface {
	// ShouldClean reports whether the backup file at path, last modified
	// at modTime, should be deleted.
	ShouldClean(path string, modTime time.Time) bool
}

// NeverClean returns a policy that retains every backup. The sink skips
// the directory scan entirely under this policy.
func NeverClean() CleanPolicy {
	return neverClean{}
}

type neverClean struct{}

func (neverClean) ShouldClean(string, time.Time) bool { return false }

// AgeClean returns a policy that prunes backups whose last modification
// is older than maxAge.
func AgeClean(maxAge time.Duration) CleanPolicy {
	return ageClean(maxAge)
}

type ageClean time.Duration

func (p ageClean) ShouldClean(_ string, modTime time.Time) bool {
	return time.Since(modTime) > time.Duration(p)
}
