package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/keys"
)

func initkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initkey",
		Short: "Generate an init-key bundle and print the public UserInitKey",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := keystore.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			defer id.Wipe()

			bundle, err := keys.NewUserInitKeyBundle(id)
			if err != nil {
				return err
			}
			defer bundle.Wipe()
			if err := keystore.SaveBundle(passphrase, bundle); err != nil {
				return err
			}

			var w codec.Writer
			bundle.InitKey.Encode(&w)
			fmt.Printf("UserInitKey: %s\n", hex.EncodeToString(w.Bytes()))
			return nil
		},
	}
}
