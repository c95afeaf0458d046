package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seedhunt/internal/app"
	"seedhunt/internal/config"
	"seedhunt/internal/domain"
)

func runCmd() *cobra.Command {
	var (
		walletID string
		output   string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search the candidate space for the target address",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			wallet, err := doc.Wallet(walletID)
			if err != nil {
				return err
			}
			if doc.Settings.Debug() && !verbose {
				if logger, err = buildLogger(true); err != nil {
					return err
				}
				logger = logger.With(zap.String("run_id", runID))
			}

			n := workers
			if n <= 0 {
				n = doc.Settings.Workers
			}
			if n < 1 {
				n = 1
			}

			wire, err := app.NewWire(app.Config{
				Wallet:   wallet,
				AuditDir: output,
				Workers:  n,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions64(wire.Searcher.Total(),
				progressbar.OptionSetDescription("checking permutations"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionThrottle(100*time.Millisecond),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
			)
			chunk := int64(doc.Settings.ChunkSize)
			wire.Searcher.SetProgress(func(visited int64) {
				_ = bar.Set64(visited)
				if visited%chunk == 0 {
					logger.Debug("progress",
						zap.Int64("visited", visited),
						zap.Int64("total", wire.Searcher.Total()))
				}
			})

			res, err := wire.Searcher.Run(cmd.Context())
			if closeErr := wire.Close(); closeErr != nil {
				if err == nil {
					err = fmt.Errorf("closing audit trail: %w", closeErr)
				} else {
					logger.Error("closing audit trail", zap.Error(closeErr))
				}
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			switch {
			case errors.Is(err, domain.ErrNotFound):
				fmt.Printf("No matching mnemonic found.\n")
				fmt.Printf("Candidates visited: %d\n", res.Stats.Visited)
				fmt.Printf("Checksum-valid candidates: %d\n", res.Stats.ChecksumValid)
				if res.Stats.LastAddress != "" {
					fmt.Printf("Last derived address: %s\n", res.Stats.LastAddress)
				}
				return err
			case err != nil:
				return err
			}

			fmt.Printf("Success! Found valid mnemonic:\n")
			fmt.Printf("Mnemonic: %s\n", res.Mnemonic)
			fmt.Printf("Derivation path: %s\n", res.Path)
			fmt.Printf("Address: %s\n", res.Address)
			return nil
		},
	}

	cmd.Flags().StringVarP(&walletID, "wallet", "w", "wallet_1", "wallet entry to recover")
	cmd.Flags().StringVarP(&output, "output", "o", "output", "directory for the CSV audit trail")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default from settings, else 1)")
	return cmd
}
