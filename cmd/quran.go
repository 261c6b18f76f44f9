package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tmanina/internal/cli"
	"tmanina/internal/quran"

	"github.com/spf13/cobra"
)

var (
	flagQuranSurah int
	flagQuranJuz   int
)

var quranCmd = &cobra.Command{
	Use:   "quran [page]",
	Short: "Read a mushaf page",
	Long:  "Prints the Uthmani-script verses of a mushaf page (1-604) from quran.com.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuran,
}

func init() {
	quranCmd.Flags().IntVar(&flagQuranSurah, "surah", 0, "Open the first page of a surah (1-114)")
	quranCmd.Flags().IntVar(&flagQuranJuz, "juz", 0, "Open the first page of a juz (1-30)")
	rootCmd.AddCommand(quranCmd)
}

func runQuran(cmd *cobra.Command, args []string) error {
	page := 1
	switch {
	case flagQuranSurah != 0:
		s, ok := quran.SurahByNumber(flagQuranSurah)
		if !ok {
			return fmt.Errorf("surah %d out of range 1-114", flagQuranSurah)
		}
		page = s.StartPage
	case flagQuranJuz != 0:
		if flagQuranJuz < 1 || flagQuranJuz > 30 {
			return fmt.Errorf("juz %d out of range 1-30", flagQuranJuz)
		}
		page = quran.JuzStartPage(flagQuranJuz)
	case len(args) == 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page %q is not a number", args[0])
		}
		page = n
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	client := quran.NewClient()
	verses, err := client.PageVerses(ctx, page)
	if err != nil {
		return fmt.Errorf("fetching page %d: %w", page, err)
	}

	surah, _ := quran.SurahForPage(page)

	if flagQuiet {
		for _, v := range verses {
			fmt.Printf("%s\t%s\n", v.Key, v.Text)
		}
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("سُورَة %s", surah.Name)))
	fmt.Println()

	for _, v := range verses {
		fmt.Printf("  %s %s\n\n", v.Text, quran.VerseMark(v.Key))
	}

	fmt.Printf("  Page %d/%d · Juz %d\n\n", page, quran.TotalPages, quran.JuzForPage(page))
	return nil
}
