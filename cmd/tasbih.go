package cmd

import (
	"fmt"
	"strconv"
	"time"

	"tmanina/internal/adhkar"
	"tmanina/internal/cli"

	"github.com/spf13/cobra"
)

var flagTasbihDhikr string

var tasbihCmd = &cobra.Command{
	Use:   "tasbih [count]",
	Short: "Record recitations",
	Long:  "Record one or more recitations in today's count. With no argument, records one.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTasbih,
}

func init() {
	tasbihCmd.Flags().StringVar(&flagTasbihDhikr, "dhikr", "", "Dhikr id (for the printed text only)")
	rootCmd.AddCommand(tasbihCmd)
}

func runTasbih(_ *cobra.Command, args []string) error {
	count := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("count must be a positive number, got %q", args[0])
		}
		count = n
	}

	cfg := loadConfigOrDefault()
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	st.Record(count, time.Now())
	snap := st.Snapshot(time.Now())

	if flagQuiet {
		fmt.Println(snap.Today)
		return nil
	}

	if d, ok := adhkar.OptionByID(flagTasbihDhikr); ok {
		fmt.Printf("\n  %s\n", d.Text)
	}
	fmt.Printf("\n  Recorded %s. Today: %s  Streak: %s\n",
		cli.FormatNumber(int64(count)),
		cli.FormatNumber(int64(snap.Today)),
		cli.FormatStreak(snap.Streak),
	)
	return nil
}
