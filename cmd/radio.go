package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tmanina/internal/cli"
	"tmanina/internal/radio"

	"github.com/spf13/cobra"
)

var flagRadioSearch string

var radioCmd = &cobra.Command{
	Use:   "radio",
	Short: "List Quran radio streams",
	Long:  "Lists streaming radio stations from mp3quran.net. Pipe a URL into your player of choice.",
	RunE:  runRadio,
}

func init() {
	radioCmd.Flags().StringVar(&flagRadioSearch, "search", "", "Filter stations by name (substring match)")
	rootCmd.AddCommand(radioCmd)
}

func runRadio(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := radio.NewClient()
	stations, err := client.Stations(ctx)
	if err != nil {
		return fmt.Errorf("fetching radio stations: %w", err)
	}

	if flagRadioSearch != "" {
		q := strings.ToLower(flagRadioSearch)
		n := 0
		for _, s := range stations {
			if strings.Contains(strings.ToLower(s.Name), q) {
				stations[n] = s
				n++
			}
		}
		stations = stations[:n]
	}

	if len(stations) == 0 {
		fmt.Println("\n  No stations found.")
		return nil
	}

	if flagQuiet {
		for _, s := range stations {
			fmt.Printf("%s\t%s\n", s.Name, s.URL)
		}
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("QURAN RADIO  %d stations", len(stations))))
	fmt.Println()

	rows := make([][]string, 0, len(stations))
	for _, s := range stations {
		rows = append(rows, []string{s.Name, s.URL})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Station", "Stream"},
		Rows:    rows,
	}))

	return nil
}
