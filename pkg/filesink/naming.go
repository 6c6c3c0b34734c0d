package filesink

import "time"

// DefaultDateLayout is the layout of the Dated naming policy.
const DefaultDateLayout = "2006-01-02"

// NamingPolicy decides the base name of the active log file. The policy
// is consulted on every write; when the returned name differs from the
// file currently open, the sink switches over.
type NamingPolicy interface {
	FileName(t time.Time) string
}

// Changeless returns a naming policy that always reuses one file name.
func Changeless(name string) NamingPolicy {
	return changelessNaming(name)
}

type changelessNaming string

func (n changelessNaming) FileName(time.Time) string {
	return string(n)
}

// Dated returns a naming policy that derives the file name from the
// write date, so the sink starts a new file whenever the formatted date
// changes. An empty layout means DefaultDateLayout.
func Dated(layout string) NamingPolicy {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return datedNaming(layout)
}

type datedNaming string

func (n datedNaming) FileName(t time.Time) string {
	return t.Format(string(n))
}
