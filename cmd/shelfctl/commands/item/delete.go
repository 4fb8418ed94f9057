package item

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelf-labs/shelf/cmd/shelfctl/cmdutil"
	"github.com/shelf-labs/shelf/pkg/apiclient"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item",
	Long: `Delete an item from the Shelf server.

The server refuses to delete items younger than the retention hold.
You will be prompted for confirmation unless --force is specified.

Examples:
  # Delete item with confirmation
  shelfctl item delete 3

  # Delete item without confirmation
  shelfctl item delete 3 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid item id: %q", args[0])
	}

	client := cmdutil.GetClient()

	return cmdutil.RunDeleteWithConfirmation("item", args[0], deleteForce, func() error {
		if err := client.DeleteItem(uint(id)); err != nil {
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) {
				switch {
				case apiErr.IsRetained():
					return fmt.Errorf("item %d is still under its retention hold: %s", id, apiErr.Message)
				case apiErr.IsNotFound():
					return fmt.Errorf("item %d does not exist", id)
				}
			}
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
}
