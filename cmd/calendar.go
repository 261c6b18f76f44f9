package cmd

import (
	"context"
	"fmt"
	"time"

	"tmanina/internal/aladhan"
	"tmanina/internal/cli"

	"github.com/spf13/cobra"
)

var flagCalendarDate string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the Hijri date",
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&flagCalendarDate, "date", "", "Gregorian date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	date := time.Now()
	if flagCalendarDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", flagCalendarDate, time.Local)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD, got %q", flagCalendarDate)
		}
		date = parsed
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := aladhan.NewClient()
	hijri, err := client.HijriFor(ctx, date)
	if err != nil {
		return fmt.Errorf("converting %s to Hijri: %w", date.Format("2006-01-02"), err)
	}

	fmt.Println()
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Gregorian", date.Format("Monday, 2 January 2006")},
		{"Hijri", fmt.Sprintf("%s, %d %s %d AH", hijri.Weekday, hijri.Day, hijri.MonthEn, hijri.Year)},
		{"بالعربية", fmt.Sprintf("%s %d %s %d هـ", hijri.WeekdayAr, hijri.Day, hijri.MonthAr, hijri.Year)},
	}))
	fmt.Println()

	return nil
}
