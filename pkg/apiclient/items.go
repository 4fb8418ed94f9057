package apiclient

import (
	"fmt"
	"time"
)

// Item represents an item returned by the API.
type Item struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListItems returns all items, newest first.
func (c *Client) ListItems() ([]Item, error) {
	var items []Item
	if err := c.get("/api/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem creates a new item with the given name.
func (c *Client) CreateItem(name string) (*Item, error) {
	req := map[string]string{"name": name}
	var item Item
	if err := c.post("/api/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem deletes an item by id.
// The server refuses deletion of items younger than the retention hold.
func (c *Client) DeleteItem(id uint) error {
	return c.delete(fmt.Sprintf("/api/items/%d", id), nil)
}
