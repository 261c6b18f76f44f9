package cmd

import (
	"context"
	"fmt"
	"time"

	"tmanina/internal/aladhan"
	"tmanina/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagPrayersCity    string
	flagPrayersCountry string
	flagPrayersMethod  int
)

var prayersCmd = &cobra.Command{
	Use:   "prayers",
	Short: "Today's prayer times",
	RunE:  runPrayers,
}

func init() {
	prayersCmd.Flags().StringVar(&flagPrayersCity, "city", "", "Override configured city")
	prayersCmd.Flags().StringVar(&flagPrayersCountry, "country", "", "Override configured country")
	prayersCmd.Flags().IntVar(&flagPrayersMethod, "method", -1, "Override calculation method")
	rootCmd.AddCommand(prayersCmd)
}

func runPrayers(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	city := cfg.General.City
	country := cfg.General.Country
	method := cfg.General.Method
	if flagPrayersCity != "" {
		city = flagPrayersCity
	}
	if flagPrayersCountry != "" {
		country = flagPrayersCountry
	}
	if flagPrayersMethod >= 0 {
		method = flagPrayersMethod
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := aladhan.NewClient()
	timings, hijri, err := client.TimingsByCity(ctx, city, country, method)
	if err != nil {
		return fmt.Errorf("fetching prayer times for %s, %s: %w", city, country, err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PRAYER TIMES  %s, %s", city, country)))
	fmt.Println()

	rows := make([][]string, 0, 6)
	for _, p := range timings.Ordered() {
		rows = append(rows, []string{p.Name, p.Arabic, cli.FormatClock(p.Time)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Prayer", "", "Time"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %d %s %d AH · %d %s %d هـ\n\n",
		hijri.Day, hijri.MonthEn, hijri.Year,
		hijri.Day, hijri.MonthAr, hijri.Year,
	)

	return nil
}
