package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-autofill/internal/config"
	"github.com/jonathan/resume-autofill/internal/observability"
	"github.com/jonathan/resume-autofill/internal/schemas"
	"github.com/jonathan/resume-autofill/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the stored resume profile",
}

var profileImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate and store a profile JSON document",
	RunE:  runProfileImport,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored profile",
	RunE:  runProfileShow,
}

var profileExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored profile to a JSON file",
	RunE:  runProfileExport,
}

var (
	profileImportFile string
	profileExportFile string
	profileShowJSON   bool
)

func init() {
	profileImportCmd.Flags().StringVarP(&profileImportFile, "in", "i", "", "Path to the profile JSON file (required)")
	_ = profileImportCmd.MarkFlagRequired("in")

	profileExportCmd.Flags().StringVarP(&profileExportFile, "out", "o", "", "Path to write the profile JSON (required)")
	_ = profileExportCmd.MarkFlagRequired("out")

	profileShowCmd.Flags().BoolVar(&profileShowJSON, "json", false, "Print raw JSON instead of a summary")

	profileCmd.AddCommand(profileImportCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileExportCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileImport(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{StorePath: flagStore})
	if err != nil {
		return err
	}

	// Schema validation first: it produces field-level messages for hand
	// written JSON. A missing schema file is not fatal.
	if err := schemas.ValidateProfileFile(profileImportFile); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("profile does not match schema: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate against schema: %v\n", err)
	}

	data, err := os.ReadFile(profileImportFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("invalid profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveProfile(context.Background(), &profile); err != nil {
		return err
	}

	fmt.Println("Profile saved")
	return nil
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{StorePath: flagStore})
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.LoadProfile(context.Background())
	if err != nil {
		return err
	}
	if profile.IsEmpty() {
		fmt.Println("No profile stored. Import one with 'autofill_agent profile import --in profile.json'.")
		return nil
	}

	if profileShowJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintProfileSummary(profile)
	return nil
}

func runProfileExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{StorePath: flagStore})
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.LoadProfile(context.Background())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(profileExportFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	fmt.Printf("Output: %s\n", profileExportFile)
	return nil
}
