package item

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelf-labs/shelf/cmd/shelfctl/cmdutil"
	"github.com/shelf-labs/shelf/internal/cli/timeutil"
	"github.com/shelf-labs/shelf/pkg/apiclient"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items",
	Long: `List all items on the Shelf server, newest first.

Examples:
  # List items as table
  shelfctl item list

  # List as JSON
  shelfctl item list -o json

  # List as YAML
  shelfctl item list -o yaml`,
	RunE: runList,
}

// ItemList is a list of items for table rendering.
type ItemList []apiclient.Item

// Headers implements TableRenderer.
func (il ItemList) Headers() []string {
	return []string{"ID", "NAME", "CREATED", "AGE"}
}

// Rows implements TableRenderer.
func (il ItemList) Rows() [][]string {
	now := time.Now()
	rows := make([][]string, 0, len(il))
	for _, it := range il {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Name,
			timeutil.FormatTime(it.CreatedAt),
			timeutil.FormatAge(now.Sub(it.CreatedAt)),
		})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	items, err := client.ListItems()
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, items, len(items) == 0, "No items found.", ItemList(items))
}
