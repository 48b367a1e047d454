// Package swimtopia parses the CSV exports produced by Swimtopia's athlete
// performance reports into typed domain records.
package swimtopia

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Athlete Report Card export columns. The meet group repeats once per meet,
// with column names prefixed Meet1-, Meet2-, and so on.
var (
	reportCardLead = []string{
		"AgeGroup",
		"AthleteId",
		"LastName",
		"FirstName",
		"LastName_FirstName",
		"Age",
		"EventDistance",
		"EventStroke",
	}
	reportCardMeet = []string{
		"Name",
		"Result",
		"ResultSec",
		"Improved",
		"Points",
		"Date",
	}
	reportCardTail = []string{
		"TotalResults",
		"TotalImproved",
		"TotalPoints",
		"AmountImprovedSec",
		"PercentImproved",
	}
)

// Skip reports one input cell that was excluded from the run, with enough
// identity for the user to find it in the export.
type Skip struct {
	Line      int
	AthleteID string
	Athlete   string
	Event     model.Event
	Meet      int
	Reason    error
}

// ReportCard is the parsed Athlete Report Card export: one SwimRecord per
// (athlete, event, meet) cell that holds a result, plus the per-cell skips.
type ReportCard struct {
	Records []model.SwimRecord
	Skipped []Skip
}

// ParseReportCard reads an Athlete Report Card CSV. The header is validated
// in full; a malformed header fails the parse. Cells with unparseable or
// non-positive times are skipped and reported, not fatal.
//
// Times are taken from the ResultSec column and the report is assumed to be
// exported in the given course.
func ParseReportCard(r io.Reader, course model.Course) (*ReportCard, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrBadHeader)
	}

	meetCount, err := validateReportCardHeader(rows[0])
	if err != nil {
		return nil, err
	}

	lead := len(reportCardLead)
	group := len(reportCardMeet)

	rc := &ReportCard{}
	for lineIdx, row := range rows[1:] {
		line := lineIdx + 2 // 1-based, after the header

		ageGroup := row[0]
		athleteID := row[1]
		lastName := row[2]
		firstName := row[3]
		age := row[5]
		distance, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: EventDistance %q", ErrBadRow, line, row[6])
		}
		stroke := model.Stroke(strings.ToLower(row[7]))
		event := model.Event{Stroke: stroke, Distance: distance, Course: course}
		name := firstName + " " + lastName

		for i := 0; i < meetCount; i++ {
			start := lead + i*group
			meetName := row[start]
			resultSec := row[start+2]
			meetDate := row[start+5]

			if resultSec == "" {
				continue
			}

			meet := model.Meet{Number: i + 1, Date: meetDate, Name: meetName}

			secs, err := strconv.ParseFloat(resultSec, 64)
			if err != nil {
				rc.Skipped = append(rc.Skipped, Skip{
					Line: line, AthleteID: athleteID, Athlete: name, Event: event, Meet: i + 1,
					Reason: fmt.Errorf("%w: ResultSec %q", model.ErrInvalidTime, resultSec),
				})
				continue
			}

			rec := model.SwimRecord{
				AthleteID:   athleteID,
				AthleteName: name,
				AgeGroup:    ageGroup,
				Age:         age,
				Event:       event,
				Meet:        meet,
				Time:        time.Duration(secs * float64(time.Second)),
			}
			if err := rec.Validate(); err != nil {
				rc.Skipped = append(rc.Skipped, Skip{
					Line: line, AthleteID: athleteID, Athlete: name, Event: event, Meet: i + 1,
					Reason: err,
				})
				continue
			}
			rc.Records = append(rc.Records, rec)
		}
	}

	return rc, nil
}

// validateReportCardHeader checks the full expected column layout and
// returns the number of repeating meet groups.
func validateReportCardHeader(header []string) (int, error) {
	overhead := len(reportCardLead) + len(reportCardTail)
	meetCols := len(header) - overhead
	if meetCols < len(reportCardMeet) {
		return 0, fmt.Errorf("%w: report card needs at least %d columns, got %d",
			ErrBadHeader, overhead+len(reportCardMeet), len(header))
	}
	meetCount := meetCols / len(reportCardMeet)
	if meetCols%len(reportCardMeet) != 0 {
		return 0, fmt.Errorf("%w: report card needs %d columns per meet",
			ErrBadHeader, len(reportCardMeet))
	}

	for i, want := range ReportCardHeader(meetCount) {
		if header[i] != want {
			return 0, fmt.Errorf("%w: column %d should be %s, not %s",
				ErrBadHeader, i+1, want, header[i])
		}
	}
	return meetCount, nil
}

// ReportCardHeader builds the full expected header row for an Athlete
// Report Card export covering meetCount meets.
func ReportCardHeader(meetCount int) []string {
	header := make([]string, 0, len(reportCardLead)+meetCount*len(reportCardMeet)+len(reportCardTail))
	header = append(header, reportCardLead...)
	for i := 0; i < meetCount; i++ {
		for _, mc := range reportCardMeet {
			header = append(header, fmt.Sprintf("Meet%d-%s", i+1, mc))
		}
	}
	header = append(header, reportCardTail...)
	return header
}
