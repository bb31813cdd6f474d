package cmd

import (
	"context"
	"fmt"

	"receiving-manager/core/config"
	"receiving-manager/core/database"
	"receiving-manager/core/logger"
	"receiving-manager/feature/receiving"
	"receiving-manager/feature/receiving/models"

	"github.com/spf13/cobra"
)

var documentsStatus string

// documentsCmd lists receipt documents from the terminal, mainly so an
// operator setting up a warehouse can see what is waiting to be conferenced
// without the UI.
var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List receipt documents by status",
	Long: `List receipt documents filtered by status.

Examples:
  # Documents waiting for conference
  receiving-manager documents

  # Conferences currently underway
  receiving-manager documents --status IN_PROGRESS`,
	RunE: runListDocuments,
}

func init() {
	documentsCmd.Flags().StringVar(&documentsStatus, "status", string(models.DocumentPending), "Document status to filter by")
	RootCmd.AddCommand(documentsCmd)
}

func runListDocuments(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// CLI output goes to stdout; the logger only reports failures.
	cfg.Log.Format = "console"
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := receiving.NewService(db, nil, "", l)

	docs, err := svc.ListDocuments(ctx, models.DocumentStatus(documentsStatus))
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		fmt.Printf("No documents with status %s\n", documentsStatus)
		return nil
	}

	fmt.Printf("%-6s %-20s %-28s %s\n", "ID", "REFERENCE", "CREATED", "NOTE")
	for _, doc := range docs {
		fmt.Printf("%-6d %-20s %-28s %s\n",
			doc.ID, doc.Reference, doc.CreatedAt.Format("2006-01-02 15:04:05"), doc.Note)
	}
	fmt.Printf("\n%d document(s)\n", len(docs))

	return nil
}
