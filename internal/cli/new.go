package cli

import (
	"fmt"

	"resumecraft/internal/common"
	"resumecraft/internal/export"
	"resumecraft/internal/resume"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a blank resume document",
	Long: `Create a blank resume document as structured JSON: empty personal
info, empty summary, and five empty entry collections. Write it to a file
with -o, or to stdout by default.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var newConfig common.CommandConfig

func init() {
	newCmd.Flags().StringVarP(&newConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
}

func runNew(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	doc := resume.NewBlankDocument()
	artifact, err := export.GlobalRegistry.Export(doc, "json")
	if err != nil {
		return fmt.Errorf("failed to create blank document: %w", err)
	}

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleArtifact(artifact, newConfig); err != nil {
		return err
	}

	logger.Info("Blank document created")
	return nil
}
