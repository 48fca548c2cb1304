package text

// runPtr is satisfied by pointers to any struct embedding CharacterRun.
type runPtr[T any] interface {
	*T
	characterRun() *CharacterRun
}

// RunRange returns the character range of a typed run.
func RunRange[T any, P runPtr[T]](run *T) CharacterRun {
	return *P(run).characterRun()
}

// InsertIntoRuns updates runs after count characters were inserted at index.
// Runs starting at or after index are shifted; runs strictly containing
// index grow by count.
func InsertIntoRuns[T any, P runPtr[T]](runs []T, index CharacterIndex, count Length) []T {
	if count == 0 {
		return runs
	}
	for i := range runs {
		cr := P(&runs[i]).characterRun()
		switch {
		case cr.Index >= index:
			cr.Index += count
		case index < cr.End():
			cr.Count += count
		}
	}
	return runs
}

// RemoveFromRuns updates runs after count characters were removed at index.
// Runs inside the removed range are dropped, runs overlapping it are truncated
// and runs after it are shifted back.
func RemoveFromRuns[T any, P runPtr[T]](runs []T, index CharacterIndex, count Length) []T {
	if count == 0 {
		return runs
	}
	end := index + count
	out := runs[:0]
	for _, run := range runs {
		cr := P(&run).characterRun()
		runEnd := cr.End()
		switch {
		case runEnd <= index:
			// Before the removed range.
		case cr.Index >= end:
			cr.Index -= count
		default:
			keepBefore := Length(0)
			if cr.Index < index {
				keepBefore = index - cr.Index
			}
			keepAfter := Length(0)
			if runEnd > end {
				keepAfter = runEnd - end
			}
			if keepBefore+keepAfter == 0 {
				continue
			}
			if cr.Index > index {
				cr.Index = index
			}
			cr.Count = keepBefore + keepAfter
		}
		out = append(out, run)
	}
	return out
}

// SpliceRuns replaces the coverage of [index, index+count) with newRuns.
// Runs partially covering the range are split so their outside parts survive.
// The result stays sorted when runs and newRuns are sorted.
func SpliceRuns[T any, P runPtr[T]](runs []T, index CharacterIndex, count Length, newRuns []T) []T {
	end := index + count
	out := make([]T, 0, len(runs)+len(newRuns)+1)
	inserted := false
	insert := func() {
		if !inserted {
			out = append(out, newRuns...)
			inserted = true
		}
	}
	for _, run := range runs {
		cr := *P(&run).characterRun()
		runEnd := cr.End()
		if runEnd <= index {
			out = append(out, run)
			continue
		}
		if cr.Index >= end {
			insert()
			out = append(out, run)
			continue
		}
		if cr.Index < index {
			left := run
			P(&left).characterRun().Count = index - cr.Index
			out = append(out, left)
		}
		if runEnd > end {
			insert()
			right := run
			rc := P(&right).characterRun()
			rc.Index = end
			rc.Count = runEnd - end
			out = append(out, right)
		}
	}
	insert()
	return out
}

// ClampRuns truncates or drops runs extending past length.
func ClampRuns[T any, P runPtr[T]](runs []T, length Length) []T {
	out := runs[:0]
	for _, run := range runs {
		cr := P(&run).characterRun()
		if cr.Index >= length {
			continue
		}
		if cr.End() > length {
			cr.Count = length - cr.Index
		}
		if cr.Count == 0 {
			continue
		}
		out = append(out, run)
	}
	return out
}

// CheckRunBounds verifies every run lies inside [0, length].
func CheckRunBounds[T any, P runPtr[T]](name string, runs []T, length Length) error {
	for i := range runs {
		if P(&runs[i]).characterRun().End() > length {
			return &RunError{Vector: name, Kind: RunPastEnd, Index: i, Length: length}
		}
	}
	return nil
}

// CheckRunOrder verifies runs are inside [0, length], sorted and non-overlapping.
func CheckRunOrder[T any, P runPtr[T]](name string, runs []T, length Length) error {
	if err := CheckRunBounds[T, P](name, runs, length); err != nil {
		return err
	}
	var prevEnd CharacterIndex
	for i := range runs {
		cr := P(&runs[i]).characterRun()
		if cr.Index < prevEnd {
			return &RunError{Vector: name, Kind: RunUnsorted, Index: i, Length: length}
		}
		prevEnd = cr.End()
	}
	return nil
}

// FindRun returns the index of the sorted run covering index, or -1.
func FindRun[T any, P runPtr[T]](runs []T, index CharacterIndex) int {
	lo, hi := 0, len(runs)
	for lo < hi {
		mid := (lo + hi) / 2
		cr := P(&runs[mid]).characterRun()
		switch {
		case index < cr.Index:
			hi = mid
		case index >= cr.End():
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// DropEmptyRuns removes runs covering no character.
func DropEmptyRuns[T any, P runPtr[T]](runs []T) []T {
	out := runs[:0]
	for i := range runs {
		if P(&runs[i]).characterRun().Count > 0 {
			out = append(out, runs[i])
		}
	}
	return out
}

// ExtendRunsEndingAt grows by count every non-empty run ending exactly at end.
func ExtendRunsEndingAt[T any, P runPtr[T]](runs []T, end CharacterIndex, count Length) []T {
	for i := range runs {
		cr := P(&runs[i]).characterRun()
		if cr.Count > 0 && cr.End() == end {
			cr.Count += count
		}
	}
	return runs
}
