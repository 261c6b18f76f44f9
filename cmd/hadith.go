package cmd

import (
	"context"
	"fmt"
	"time"

	"tmanina/internal/cli"
	"tmanina/internal/hadith"

	"github.com/spf13/cobra"
)

var (
	flagHadithFrom  int
	flagHadithCount int
)

var hadithCmd = &cobra.Command{
	Use:   "hadith [book]",
	Short: "Browse the hadith collections",
	Long:  "Without arguments, lists the nine collections. With a book id, prints a range of narrations.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHadith,
}

func init() {
	hadithCmd.Flags().IntVar(&flagHadithFrom, "from", 1, "First narration number to print")
	hadithCmd.Flags().IntVar(&flagHadithCount, "count", 5, "How many narrations to print")
	rootCmd.AddCommand(hadithCmd)
}

func runHadith(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listHadithBooks()
	}

	book, ok := hadith.BookByID(args[0])
	if !ok {
		return fmt.Errorf("unknown book %q, run \"hadith\" to list them", args[0])
	}
	if flagHadithCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := hadith.NewClient()
	hadiths, err := client.Range(ctx, book.ID, flagHadithFrom, flagHadithFrom+flagHadithCount-1)
	if err != nil {
		return fmt.Errorf("fetching %s %d-%d: %w", book.Name, flagHadithFrom, flagHadithFrom+flagHadithCount-1, err)
	}

	if flagQuiet {
		for _, h := range hadiths {
			fmt.Printf("%d\t%s\n", h.Number, h.Arabic)
		}
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s · %s", book.Name, book.NameAr)))
	fmt.Println()

	for _, h := range hadiths {
		fmt.Printf("  %s\n\n  %s\n\n", cli.FormatNumber(int64(h.Number)), h.Arabic)
	}
	return nil
}

func listHadithBooks() error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("HADITH COLLECTIONS"))
	fmt.Println()

	rows := make([][]string, 0, len(hadith.Books))
	for _, b := range hadith.Books {
		rows = append(rows, []string{b.ID, b.Name, b.NameAr, cli.FormatNumber(int64(b.Total))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Id", "Collection", "", "Narrations"},
		Rows:    rows,
	}))
	return nil
}
