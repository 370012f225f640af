package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"groupcrypt/internal/keys"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := keystore.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			defer id.Wipe()
			fmt.Printf("Fingerprint: %s\n", keys.Fingerprint(id.PublicKey.Slice()))
			return nil
		},
	}
}
