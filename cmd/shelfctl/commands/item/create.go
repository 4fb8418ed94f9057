package item

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelf-labs/shelf/cmd/shelfctl/cmdutil"
	"github.com/shelf-labs/shelf/internal/cli/output"
	"github.com/shelf-labs/shelf/internal/cli/timeutil"
	"github.com/shelf-labs/shelf/pkg/apiclient"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new item",
	Long: `Create a new item on the Shelf server.

The item name must not be blank. The server assigns the id and creation
timestamp.

Examples:
  # Create an item
  shelfctl item create "Quarterly Report"

  # Create and print as JSON
  shelfctl item create "Quarterly Report" -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	client := cmdutil.GetClient()

	created, err := client.CreateItem(name)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsValidationError() {
			return fmt.Errorf("invalid item name: %s", apiErr.Message)
		}
		return fmt.Errorf("failed to create item: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return cmdutil.PrintResource(os.Stdout, created, nil)
	}

	cmdutil.PrintSuccess(fmt.Sprintf("Item %d created successfully", created.ID))
	return output.SimpleTable(os.Stdout, [][2]string{
		{"ID", fmt.Sprintf("%d", created.ID)},
		{"Name", created.Name},
		{"Created", timeutil.FormatTime(created.CreatedAt)},
	})
}
