package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Compare compares two versions of the form [v]major.minor.patch.
// It returns 1 if a > b, -1 if a < b and 0 if they are equal.
func Compare(a, b string) (int, error) {
	parse := func(s string) (lo.Tuple3[int, int, int], error) {
		var v lo.Tuple3[int, int, int]
		_, err := fmt.Sscanf(strings.TrimPrefix(strings.TrimSpace(s), "v"), "%d.%d.%d", &v.A, &v.B, &v.C)
		if err != nil {
			return v, fmt.Errorf("invalid version %q: %w", s, err)
		}
		return v, nil
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.A, B: bv.A},
		{A: av.B, B: bv.B},
		{A: av.C, B: bv.C},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}
