package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"groupcrypt/internal/keys"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a signing identity and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := keys.NewIdentity()
			if err != nil {
				return err
			}
			defer id.Wipe()
			fp := keys.Fingerprint(id.PublicKey.Slice())
			if err := keystore.SaveIdentity(passphrase, id); err != nil {
				return err
			}
			fmt.Printf("Identity created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}
