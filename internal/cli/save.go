package cli

import (
	"fmt"

	"resumecraft/internal/common"
	"resumecraft/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var saveCmd = &cobra.Command{
	Use:   "save [document-file]",
	Short: "Save a resume document to the resume store",
	Long: `Save a resume document to the resume store over HTTP. The store
assigns an id when none is given; the effective id is printed on success.
A failed save leaves the document untouched and is not retried.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

var saveResumeID string

func init() {
	saveCmd.Flags().String("endpoint", "", "Save endpoint URL (default from config)")
	saveCmd.Flags().StringVar(&saveResumeID, "id", "", "Resume id to save under (default: assigned by the store)")

	if err := viper.BindPFlag("store.endpoint", saveCmd.Flags().Lookup("endpoint")); err != nil {
		panic(err)
	}
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	doc, err := fileProcessor.LoadDocument(args[0])
	if err != nil {
		return err
	}

	client := store.NewClient(cfg.Store.Endpoint, cfg.Store.APIKey, cfg.Store.Timeout)

	logger.Info("Saving resume",
		"document", args[0],
		"endpoint", cfg.Store.Endpoint)

	response, err := client.Save(cmd.Context(), doc, saveResumeID)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	fmt.Printf("%s (id: %s)\n", response.Message, response.ResumeID)
	logger.Info("Resume saved", "resume_id", response.ResumeID)
	return nil
}
