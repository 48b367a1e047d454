package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowerhill/swimreports/internal/app"
	"github.com/flowerhill/swimreports/internal/config"
	"github.com/flowerhill/swimreports/internal/domain/layout"
	"github.com/flowerhill/swimreports/internal/domain/model"
	"github.com/flowerhill/swimreports/pkg/logger"
)

const ribbonsHelp = `To create the input CSV file:
    Go to Reports in Swimtopia
    Select Athlete Report Card under Athlete Performance.

    Make sure the following criteria are set:
      Season Roster: current year
      Gender: All
      Min/Max Age: leave blank
      Show times in course: S - Short Course Meters
      All other options: leave unchecked

    Click on the "Generate Report" button
    Click on the "Download Athlete Report Card Data CSV" link`

const bestTimesHelp = `To create the input CSV file:
    Go to Reports in Swimtopia
    Select Best Times under Athlete Performance.

    Make sure the following criteria are set:
      Season Roster: current year
      Limit results to course: S - Short Course Meters
      Convert times to: S - Short Course Meters
      Only show times from: Selected season

    Click on the "Generate Report" button
    Click on the "Download CSV" button`

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}()

	rootCmd := &cobra.Command{
		Use:           "swimreports",
		Short:         "Generate printable reports from Swimtopia swim-meet data",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(ribbonsCmd())
	rootCmd.AddCommand(bestTimesCmd())
	rootCmd.AddCommand(autoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService loads configuration and builds the pipeline service from it.
func newService(cmd *cobra.Command) (*app.Service, *config.Config, error) {
	ctx := cmd.Context()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(logger.Get()),
		app.WithCourse(model.Course(cfg.Course)),
		app.WithSheet(layout.Sheet{Rows: cfg.SheetRows, Columns: cfg.SheetColumns}),
		app.WithReportTitle(cfg.ReportTitle),
	)
	return svc, cfg, nil
}

func ribbonsCmd() *cobra.Command {
	var meet int
	var list bool

	cmd := &cobra.Command{
		Use:   "ribbons <athlete_report_card_csv> [black_ribbons_pdf]",
		Short: "Generate black ribbon labels for a meet",
		Long: "Generate black ribbon labels from a Swimtopia Athlete Report Card " +
			"export. Without --meet, labels are produced for the latest meet in " +
			"the data.\n\n" + ribbonsHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService(cmd)
			if err != nil {
				return err
			}

			src := args[0]

			if list {
				meets, err := svc.ListMeets(cmd.Context(), src)
				if err != nil {
					return err
				}
				fmt.Println("\nMeets")
				for _, m := range meets {
					fmt.Printf("  %2d - %s %s\n", m.Number, m.Date, m.Name)
				}
				return nil
			}

			dst := cfg.RibbonsOutput
			if len(args) == 2 {
				dst = args[1]
			}

			target := app.LatestMeet
			if meet != 0 {
				if meet < 1 {
					return fmt.Errorf("%d is not a positive meet number", meet)
				}
				target = meet
			}

			summary, err := svc.GenerateRibbons(cmd.Context(), src, dst, target)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %d labels (%d pages) for meet #%d %s to %s\n",
				summary.Ribbons, summary.Pages, summary.Meet.Number, summary.Meet.Name, summary.Output)
			if summary.Skipped > 0 {
				fmt.Printf("Skipped %d records with bad times; see the log for details\n", summary.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&meet, "meet", "m", 0, "meet number for which to generate black ribbons")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list meet information rather than create ribbons")

	return cmd
}

func bestTimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "besttimes <best_times_csv> [best_times_pdf]",
		Short: "Generate the season best-times ranking report",
		Long: "Generate the season best-times report from a Swimtopia Best Times " +
			"export.\n\n" + bestTimesHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}

			src := args[0]
			dst := app.DefaultOutput(src)
			if len(args) == 2 {
				dst = args[1]
			}

			if err := svc.GenerateBestTimes(cmd.Context(), src, dst); err != nil {
				return err
			}
			fmt.Printf("Wrote best times report to %s\n", dst)
			return nil
		},
	}
	return cmd
}

func autoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auto [dir]",
		Short: "Detect the newest exports in a directory and generate everything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return svc.GenerateAll(cmd.Context(), dir)
		},
	}
	return cmd
}
