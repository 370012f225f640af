package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"groupcrypt/internal/store"
)

var (
	home       string
	passphrase string
	keystore   *store.FileStore
)

func Execute() error {
	root := &cobra.Command{
		Use:   "groupcrypt",
		Short: "Group-messaging key management CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".groupcrypt")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			keystore = store.NewFileStore(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.groupcrypt)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(initCmd(), fingerprintCmd(), initkeyCmd(), inspectCmd())
	return root.Execute()
}
