package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-autofill/internal/config"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the remote-provider API key",
}

var apikeySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store the API key used for remote suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runAPIKeySet,
}

var apikeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE:  runAPIKeyClear,
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyClearCmd)
	rootCmd.AddCommand(apikeyCmd)
}

func runAPIKeySet(_ *cobra.Command, args []string) error {
	cfg, err := loadSettings(config.Config{StorePath: flagStore})
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveAPIKey(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Println("API key saved")
	return nil
}

func runAPIKeyClear(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{StorePath: flagStore})
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ClearAPIKey(context.Background()); err != nil {
		return err
	}

	fmt.Println("API key cleared")
	return nil
}
