package filesink

// BackupPolicy decides, before each append, whether the active file must
// first be rotated into a numbered backup slot.
type BackupPolicy interface {
	// ShouldBackup reports whether the file must rotate, given its
	// current size and the size in bytes of the pending write.
	ShouldBackup(size int64, pending int) bool

	// MaxBackups is the number of numbered backup slots retained after a
	// rotation; the slot beyond it is deleted.
	MaxBackups() int
}

// NeverBackup returns a policy that keeps appending to one file forever.
func NeverBackup() BackupPolicy {
	return neverBackup{}
}

type neverBackup struct{}

func (neverBackup) ShouldBackup(int64, int) bool { return false }
func (neverBackup) MaxBackups() int              { return 0 }

// SizeBackup returns a policy that rotates when the current size plus
// the pending write would exceed maxBytes, retaining up to maxBackups
// numbered backups. maxBackups values below one are coerced to one.
func SizeBackup(maxBytes int64, maxBackups int) BackupPolicy {
	if maxBackups < 1 {
		maxBackups = 1
	}
	return sizeBackup{maxBytes: maxBytes, maxBackups: maxBackups}
}

type sizeBackup struct {
	maxBytes   int64
	maxBackups int
}

// ShouldBackup rotates only when the file already has content: a single
// write larger than the threshold lands in a fresh file instead of
// rotating forever.
func (p sizeBackup) ShouldBackup(size int64, pending int) bool {
	return size > 0 && size+int64(pending) > p.maxBytes
}

func (p sizeBackup) MaxBackups() int { return p.maxBackups }
