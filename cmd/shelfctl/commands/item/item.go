// Package item implements item management commands for shelfctl.
package item

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for item management.
var Cmd = &cobra.Command{
	Use:   "item",
	Short: "Item management",
	Long: `Manage items on the Shelf server.

Item commands allow you to list, create, and delete items. Deletion is
subject to the server's retention hold: items younger than the minimum
age cannot be deleted.

Examples:
  # List all items
  shelfctl item list

  # Create a new item
  shelfctl item create "Quarterly Report"

  # Delete an item
  shelfctl item delete 3`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(deleteCmd)
}
