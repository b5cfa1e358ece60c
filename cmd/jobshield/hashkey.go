package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkale/jobshield/internal/config"
)

var hashkeyCmd = &cobra.Command{
	Use:   "hashkey <access-key>",
	Short: "Hash an access key for ACCESS_KEY_HASH",
	Long:  `Hash an access key with bcrypt so it can be set as ACCESS_KEY_HASH for the server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashkey,
}

func init() {
	rootCmd.AddCommand(hashkeyCmd)
}

func runHashkey(_ *cobra.Command, args []string) error {
	keys, err := config.NewAccessKeyConfig()
	if err != nil {
		return err
	}

	hash, err := keys.HashKey(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
