package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedhunt/internal/domain"
	mnemonicsvc "seedhunt/internal/services/mnemonic"
	walletsvc "seedhunt/internal/services/wallet"
)

func deriveCmd() *cobra.Command {
	var (
		mnemonic string
		path     string
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the address for a known mnemonic and path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mnemonic == "" {
				return fmt.Errorf("%w: mnemonic required (-m)", domain.ErrConfig)
			}
			p, err := domain.ParsePath(path)
			if err != nil {
				return err
			}
			if !mnemonicsvc.New().Validate(mnemonic) {
				fmt.Println("Warning: mnemonic checksum is invalid")
			}
			addr, err := walletsvc.New().Derive(mnemonic, p)
			if err != nil {
				return err
			}
			fmt.Printf("Path: %s\nAddress: %s\n", p, addr)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mnemonic, "mnemonic", "m", "", "full recovery phrase")
	cmd.Flags().StringVarP(&path, "path", "p", "m/44'/60'/0'/0/0", "derivation path")
	return cmd
}
