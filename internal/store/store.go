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

// Package store provides relational persistence for items and user
// credentials.
package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates no row matched the query.
var ErrNotFound = errors.New("not found")

// Item is one row of the items table.
type Item struct {
	// ID is the auto-assigned unique identifier.
	ID int64 `json:"id"`
	// Name is the item name.
	Name string `json:"name"`
	// Value is the item payload.
	Value string `json:"value"`
}

// User is one row of the users table. Rows are read-only from this
// service's perspective; there is no registration endpoint.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// ItemStore provides CRUD access to the items table.
type ItemStore interface {
	// List returns every item in store order.
	List(ctx context.Context) ([]Item, error)
	// Get returns the item with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Item, error)
	// GetLast returns the item with the highest id, or ErrNotFound when
	// the table is empty.
	GetLast(ctx context.Context) (*Item, error)
	// Create inserts a new item and returns it with its assigned id.
	Create(ctx context.Context, name string, value string) (*Item, error)
	// Update rewrites the named fields of the matching row. Updating a
	// missing id is not an error.
	Update(ctx context.Context, item Item) error
	// Delete removes the matching row. Deleting a missing id is not an
	// error.
	Delete(ctx context.Context, id int64) error
	// DeleteLast removes the row with the highest id and returns it, or
	// ErrNotFound when the table is empty.
	DeleteLast(ctx context.Context) (*Item, error)
}

// UserStore resolves bearer tokens and login credentials.
type UserStore interface {
	// GetUsernameByToken returns the username owning token, or
	// ErrNotFound for an unknown token.
	GetUsernameByToken(ctx context.Context, token string) (string, error)
	// GetTokenByCredentials returns the token for an exact
	// username/password match, or ErrNotFound.
	GetTokenByCredentials(ctx context.Context, username string, password string) (string, error)
}
