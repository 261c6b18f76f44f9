package cmd

import (
	"fmt"
	"time"

	"tmanina/internal/cli"
	"tmanina/internal/progress"

	"github.com/spf13/cobra"
)

var flagDailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily recitation table",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDailyDays, "days", "n", 30, "Time window in days")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	log := st.Load()
	if len(log.History) == 0 {
		fmt.Println("\n  No recitations recorded yet.")
		return nil
	}

	now := time.Now()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY  Last %dd", flagDailyDays)))
	fmt.Println()

	rows := make([][]string, 0, flagDailyDays)
	for offset := flagDailyDays - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		key := progress.MakeDayKey(day)
		count := log.History[key]
		if count == 0 {
			continue
		}
		rows = append(rows, []string{
			string(key),
			cli.FormatDayOfWeek(day.Weekday()),
			cli.FormatNumber(int64(count)),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  No data for the selected period.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Recitations"},
		Rows:    rows,
	}))

	return nil
}
