package output

import "io"

// Separator is written on its own line between two fragments.
const Separator = ","

// fragmentList writes a sequence of fragments meant to be pasted into a
// surrounding JSON array or object: a "," line goes between entries, never
// before the first or after the last.
type fragmentList struct {
	w io.Writer
	n int
}

func newFragmentList(w io.Writer) *fragmentList { return &fragmentList{w: w} }

// next must be called before writing each fragment.
func (f *fragmentList) next() error {
	if f.n > 0 {
		if _, err := io.WriteString(f.w, Separator+"\n"); err != nil {
			return err
		}
	}
	f.n++
	return nil
}
