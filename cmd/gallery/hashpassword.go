package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photoGallery/internal/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Prints a bcrypt hash for admin.password_hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hash)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
