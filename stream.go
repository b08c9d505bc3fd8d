package treefmt

import "iter"

// WriteLevelSeq is [Formatter.WriteLevel] over an iterator. Items are
// written as they arrive, one behind the iterator, so the final element
// yielded is the one marked last.
func WriteLevelSeq[T any](f *Formatter, isLastBranch bool, seq iter.Seq[T]) error {
	f.BeginLevel(isLastBranch)
	var (
		pending  T
		havePrev bool
		writeErr error
	)
	seq(func(item T) bool {
		if havePrev {
			if err := f.Write(false, pending); err != nil {
				writeErr = err
				return false
			}
		}
		pending, havePrev = item, true
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	if havePrev {
		if err := f.Write(true, pending); err != nil {
			return err
		}
	}
	f.EndLevel()
	return nil
}

// WriteLevelChan writes items received from ch as one level.
// It is a thin wrapper around [WriteLevelSeq].
func WriteLevelChan[T any](f *Formatter, isLastBranch bool, ch <-chan T) error {
	return WriteLevelSeq(f, isLastBranch, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
