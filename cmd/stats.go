package cmd

import (
	"fmt"
	"time"

	"tmanina/internal/cli"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Progress summary with a 7-day chart",
	RunE:  runStatsChart,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStatsChart(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	snap := st.Snapshot(time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROGRESS"))
	fmt.Println()
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Today", cli.FormatNumber(int64(snap.Today))},
		{"This week", cli.FormatNumber(int64(snap.Week))},
		{"This month", cli.FormatNumber(int64(snap.Month))},
		{"Streak", cli.FormatStreak(snap.Streak)},
	}))
	fmt.Println()

	max := 0
	for _, p := range snap.Series {
		if p.Value > max {
			max = p.Value
		}
	}

	for _, p := range snap.Series {
		fmt.Printf("  %s  %s %s\n",
			cli.FormatDayOfWeek(p.Weekday),
			cli.RenderBar(p.Value, max, 32),
			cli.FormatNumber(int64(p.Value)),
		)
	}
	fmt.Println()

	return nil
}
