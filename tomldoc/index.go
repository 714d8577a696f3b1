package tomldoc

import "github.com/joshuapare/tomlkit/pkg/types"

// normalizeIndex maps a 1-based, wrap-around index onto a zero-based offset
// into a collection of the given length. Indices <= 0 count back from the
// end: 0 is the last element.
func normalizeIndex(index, length int) (int, error) {
	eff := index
	if eff <= 0 {
		eff += length
	}
	if eff < 1 || eff > length {
		return 0, types.Errorf(types.ErrKindIndexOutOfRange,
			"index overreach beyond bounds (index %d, length %d)", index, length)
	}
	return eff - 1, nil
}
