package swimtopia

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Kind classifies a CSV export.
type Kind int

const (
	KindUnknown Kind = iota
	KindBestTimes
	KindReportCard
)

// DetectKind classifies a CSV file by its header row alone.
func DetectKind(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		return KindUnknown, nil
	}
	if err != nil {
		return KindUnknown, nil
	}

	if validateBestTimesHeader(header) == nil {
		return KindBestTimes, nil
	}
	if _, err := validateReportCardHeader(header); err == nil {
		return KindReportCard, nil
	}
	return KindUnknown, nil
}

// Exports holds the newest export file of each kind found in a directory.
// Either path may be empty when no file of that kind exists.
type Exports struct {
	BestTimes  string
	ReportCard string
}

// FindNewest scans dir for Swimtopia CSV exports and returns the most
// recently modified file of each kind, mirroring how the reports are
// re-downloaded over a season.
func FindNewest(dir string) (Exports, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return Exports{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var out Exports
	var bestTimesMod, reportCardMod int64
	for _, path := range paths {
		kind, err := DetectKind(path)
		if err != nil {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mod := info.ModTime().UnixNano()
		switch kind {
		case KindBestTimes:
			if out.BestTimes == "" || mod > bestTimesMod {
				out.BestTimes = path
				bestTimesMod = mod
			}
		case KindReportCard:
			if out.ReportCard == "" || mod > reportCardMod {
				out.ReportCard = path
				reportCardMod = mod
			}
		case KindUnknown:
		}
	}
	return out, nil
}
