package swimtopia

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/flowerhill/swimreports/internal/domain/besttimes"
	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Best Times export columns.
var bestTimesColumns = []string{
	"AgeGroup",
	"FirstName",
	"LastName",
	"Age",
	"Event",
	"Time",
	"ConvertedTime",
	"ConvertedHundredths",
	"Date",
	"SwimMeet",
}

// BestTimes is the parsed Best Times export plus any skipped rows.
type BestTimes struct {
	Swims   []besttimes.Swim
	Skipped []Skip
}

// ParseBestTimes reads a Best Times CSV. Times come from the
// ConvertedHundredths column (an integer count of hundredths of a second).
// Rows with unknown age groups or malformed times are skipped and reported.
func ParseBestTimes(r io.Reader) (*BestTimes, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrBadHeader)
	}

	if err := validateBestTimesHeader(rows[0]); err != nil {
		return nil, err
	}

	bt := &BestTimes{}
	for lineIdx, row := range rows[1:] {
		line := lineIdx + 2

		ageGroup := row[0]
		name := row[1] + " " + row[2]
		swimmer := fmt.Sprintf("%s (%s)", name, row[3])
		event := row[4]

		if !besttimes.KnownAgeGroup(ageGroup) {
			bt.Skipped = append(bt.Skipped, Skip{
				Line: line, Athlete: name,
				Reason: fmt.Errorf("%w: age group %q", ErrBadRow, ageGroup),
			})
			continue
		}

		hundredths, err := strconv.Atoi(row[7])
		if err != nil || hundredths <= 0 {
			bt.Skipped = append(bt.Skipped, Skip{
				Line: line, Athlete: name,
				Reason: fmt.Errorf("%w: ConvertedHundredths %q", model.ErrInvalidTime, row[7]),
			})
			continue
		}

		bt.Swims = append(bt.Swims, besttimes.Swim{
			AgeGroup: ageGroup,
			Swimmer:  swimmer,
			Event:    event,
			Time:     time.Duration(hundredths) * 10 * time.Millisecond,
			Date:     row[8],
			Meet:     row[9],
		})
	}

	return bt, nil
}

func validateBestTimesHeader(header []string) error {
	if len(header) != len(bestTimesColumns) {
		return fmt.Errorf("%w: best times file should have %d columns, got %d",
			ErrBadHeader, len(bestTimesColumns), len(header))
	}
	for i, want := range bestTimesColumns {
		if header[i] != want {
			return fmt.Errorf("%w: column %d should be %s, not %s",
				ErrBadHeader, i+1, want, header[i])
		}
	}
	return nil
}
