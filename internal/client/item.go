// Copyright (c) 2025 The itembench Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itembench/itembench/internal/api/items"
	"github.com/itembench/itembench/internal/store"
)

// ItemList retrieves every item via the REST API.
func (c *Client) ItemList(
	ctx context.Context,
) ([]store.Item, error) {
	var resp []store.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ItemGet retrieves a specific item by ID via the REST API.
func (c *Client) ItemGet(
	ctx context.Context,
	id int64,
) (*store.Item, error) {
	var resp store.Item
	path := fmt.Sprintf("/item?id=%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ItemGetLast retrieves the most recently created item via the REST API.
func (c *Client) ItemGetLast(
	ctx context.Context,
) (*store.Item, error) {
	var resp store.Item
	if err := c.do(ctx, http.MethodGet, "/item/last", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ItemCreate creates a new item via the REST API.
func (c *Client) ItemCreate(
	ctx context.Context,
	name string,
	value string,
) (*store.Item, error) {
	req := items.CreateRequest{
		Name:  name,
		Value: value,
	}

	var resp store.Item
	if err := c.do(ctx, http.MethodPost, "/items/create", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ItemUpdate rewrites an item's name and value via the REST API.
func (c *Client) ItemUpdate(
	ctx context.Context,
	id int64,
	name string,
	value string,
) error {
	req := items.UpdateRequest{
		ID:    &id,
		Name:  &name,
		Value: &value,
	}

	var resp statusResponse
	return c.do(ctx, http.MethodPut, "/item/update", req, &resp)
}

// ItemDelete deletes a specific item by ID via the REST API.
func (c *Client) ItemDelete(
	ctx context.Context,
	id int64,
) error {
	var resp statusResponse
	path := fmt.Sprintf("/item/delete?id=%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, &resp)
}

// ItemDeleteLast deletes the most recently created item via the REST API.
func (c *Client) ItemDeleteLast(
	ctx context.Context,
) (*items.DeleteLastResponse, error) {
	var resp items.DeleteLastResponse
	if err := c.do(ctx, http.MethodDelete, "/item/last/delete", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
