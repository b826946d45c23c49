package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tahcohcat/detective-quest/config"
	"github.com/tahcohcat/detective-quest/internal/clueindex"
	"github.com/tahcohcat/detective-quest/internal/console"
	"github.com/tahcohcat/detective-quest/internal/game"
	"github.com/tahcohcat/detective-quest/internal/ledger"
	"github.com/tahcohcat/detective-quest/internal/logger"
	"github.com/tahcohcat/detective-quest/internal/mansion"
)

var rootCmd = &cobra.Command{
	Use:   "detective",
	Short: "Explore the mansion, collect clues, accuse a suspect",
	Long: `Detective Quest: walk the mansion's rooms, gather the clues hidden in
them, and close the case by accusing the suspect the evidence points at.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("mansion", "", "path to the mansion blueprint JSON")
	rootCmd.Flags().Int("threshold", 0, "clues required to sustain an accusation")
	rootCmd.Flags().Int("buckets", 0, "suspect ledger bucket count")
	rootCmd.Flags().String("log-level", "", "debug, info, warn or error")

	viper.BindPFlag("mansion.path", rootCmd.Flags().Lookup("mansion"))
	viper.BindPFlag("game.threshold", rootCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("ledger.buckets", rootCmd.Flags().Lookup("buckets"))
	viper.BindPFlag("log.level", rootCmd.Flags().Lookup("log-level"))
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.GlobalLogLevel = logger.ParseLevel(cfg.Log.Level)
	log := logger.New()

	bp, err := mansion.LoadBlueprint(cfg.Mansion.Path)
	if err != nil {
		return fmt.Errorf("failed to load mansion: %w", err)
	}
	rooms, err := mansion.Build(bp)
	if err != nil {
		return fmt.Errorf("failed to build mansion: %w", err)
	}

	suspects, err := ledger.New(cfg.Ledger.Buckets)
	if err != nil {
		rooms.Teardown()
		return fmt.Errorf("failed to set up suspect ledger: %w", err)
	}

	term := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	session := game.NewSession(rooms, clueindex.New(), suspects, term, term, cfg.Game.Threshold)

	log.Info(fmt.Sprintf("🕵️  Detective Quest: %d rooms loaded from %s", rooms.Live(), cfg.Mansion.Path))

	verdict, err := session.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("session %s failed: %w", session.ID(), err)
	}

	log.Debug(fmt.Sprintf("session %s finished: tally %d/%d for %q",
		session.ID(), verdict.Tally, verdict.Threshold, verdict.Accused))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
