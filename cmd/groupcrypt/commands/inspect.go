package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/keys"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Decode and self-verify a hex-encoded UserInitKey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}
			uik, err := keys.DecodeUserInitKey(codec.NewCursor(raw))
			if err != nil {
				return err
			}

			fmt.Printf("Ciphersuites: %v\n", uik.CipherSuites)
			for _, pk := range uik.InitKeys {
				fmt.Printf("Init key:     %s\n", keys.Fingerprint(pk.Slice()))
			}
			fmt.Printf("Algorithm:    %#04x\n", uint16(uik.Algorithm))
			fmt.Printf("Identity key: %s\n", keys.Fingerprint(uik.IdentityKey.Slice()))
			if uik.SelfVerify() {
				fmt.Println("Signature:    OK")
				return nil
			}
			return fmt.Errorf("signature verification failed")
		},
	}
}
