package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"tmanina/internal/adhkar"
	"tmanina/internal/cli"

	"github.com/spf13/cobra"
)

var adhkarCmd = &cobra.Command{
	Use:   "adhkar [collection]",
	Short: "Read an adhkar collection",
	Long: "With no argument, lists the collections. With a collection id " +
		"(morning, evening, prayer, sleep), steps through it interactively; " +
		"each Enter counts one recitation.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAdhkar,
}

func init() {
	rootCmd.AddCommand(adhkarCmd)
}

func runAdhkar(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listCollections()
	}

	col, ok := adhkar.CollectionByID(args[0])
	if !ok {
		return fmt.Errorf("unknown collection %q (try: morning, evening, prayer, sleep)", args[0])
	}

	cfg := loadConfigOrDefault()
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	fmt.Println()
	fmt.Println(cli.RenderTitle(col.Title))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for i, item := range col.Items {
		fmt.Printf("  [%d/%d] %s\n", i+1, len(col.Items), item.Text)
		if item.Note != "" {
			fmt.Printf("        %s\n", item.Note)
		}

		for rep := 1; rep <= item.Repeats; rep++ {
			fmt.Printf("  %d/%d  Enter to count, s to skip: ", rep, item.Repeats)
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println()
				return nil
			}
			if strings.TrimSpace(line) == "s" {
				break
			}
			st.Record(1, time.Now())
		}
		fmt.Println()
	}

	snap := st.Snapshot(time.Now())
	fmt.Printf("  تَقَبَّلَ اللَّهُ — today: %s\n\n", cli.FormatNumber(int64(snap.Today)))
	return nil
}

func listCollections() error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("ADHKAR COLLECTIONS"))
	fmt.Println()

	rows := make([][]string, 0, len(adhkar.Collections))
	for _, col := range adhkar.Collections {
		rows = append(rows, []string{
			col.ID,
			col.Title,
			cli.FormatNumber(int64(len(col.Items))),
			cli.FormatNumber(int64(col.TotalRepeats())),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Id", "Title", "Items", "Repeats"},
		Rows:    rows,
	}))

	return nil
}
