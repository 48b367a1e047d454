// Package meetindex builds the ordered catalog of meets referenced by the
// input data and answers "latest" and "by number" lookups.
package meetindex

import (
	"fmt"
	"sort"

	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Index is the read-only meet catalog for one run.
type Index struct {
	meets    []model.Meet
	byNumber map[int]model.Meet
}

// New extracts the distinct meets referenced by records, sorted by meet
// number ascending. Records carry a full copy of their meet, so the first
// occurrence of each number wins.
func New(records []model.SwimRecord) *Index {
	byNumber := make(map[int]model.Meet)
	for _, r := range records {
		if _, ok := byNumber[r.Meet.Number]; !ok {
			byNumber[r.Meet.Number] = r.Meet
		}
	}

	meets := make([]model.Meet, 0, len(byNumber))
	for _, m := range byNumber {
		meets = append(meets, m)
	}
	sort.Slice(meets, func(i, j int) bool { return meets[i].Number < meets[j].Number })

	return &Index{meets: meets, byNumber: byNumber}
}

// Latest returns the meet with the highest number.
func (x *Index) Latest() (model.Meet, error) {
	if len(x.meets) == 0 {
		return model.Meet{}, fmt.Errorf("%w: no meets found in input", ErrEmptyInput)
	}
	return x.meets[len(x.meets)-1], nil
}

// ByNumber returns the meet with the given number. The error for an unknown
// number names the valid range so the caller can surface it directly.
func (x *Index) ByNumber(n int) (model.Meet, error) {
	if len(x.meets) == 0 {
		return model.Meet{}, fmt.Errorf("%w: no meets found in input", ErrEmptyInput)
	}
	m, ok := x.byNumber[n]
	if !ok {
		return model.Meet{}, fmt.Errorf("%w: no meet #%d (known meets: %d-%d)",
			ErrUnknownMeet, n, x.meets[0].Number, x.meets[len(x.meets)-1].Number)
	}
	return m, nil
}

// List returns the full catalog in ascending meet-number order. The slice is
// a copy; callers may not mutate the index through it.
func (x *Index) List() []model.Meet {
	out := make([]model.Meet, len(x.meets))
	copy(out, x.meets)
	return out
}

// Len returns the number of distinct meets in the catalog.
func (x *Index) Len() int {
	return len(x.meets)
}
