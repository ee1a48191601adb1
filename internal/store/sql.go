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

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Compile-time interface checks.
var (
	_ ItemStore = (*SQLStore)(nil)
	_ UserStore = (*SQLStore)(nil)
)

// SQLStore implements ItemStore and UserStore over database/sql. The
// queries use $N placeholders, which both the postgres and sqlite
// drivers accept.
type SQLStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLStore creates a SQLStore over an open database handle.
func NewSQLStore(
	db *sql.DB,
	logger *slog.Logger,
) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: logger,
	}
}

// Ping verifies the underlying database connection.
func (s *SQLStore) Ping(
	ctx context.Context,
) error {
	return s.db.PingContext(ctx)
}

// List returns every item in id order.
func (s *SQLStore) List(
	ctx context.Context,
) ([]Item, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"SELECT id, name, value FROM items ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Value); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// Get returns the item with the given id.
func (s *SQLStore) Get(
	ctx context.Context,
	id int64,
) (*Item, error) {
	var item Item
	err := s.db.QueryRowContext(
		ctx,
		"SELECT id, name, value FROM items WHERE id = $1",
		id,
	).Scan(&item.ID, &item.Name, &item.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	return &item, nil
}

// GetLast returns the item with the highest id.
func (s *SQLStore) GetLast(
	ctx context.Context,
) (*Item, error) {
	var item Item
	err := s.db.QueryRowContext(
		ctx,
		"SELECT id, name, value FROM items ORDER BY id DESC LIMIT 1",
	).Scan(&item.ID, &item.Name, &item.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("getting last item: %w", err)
	}

	return &item, nil
}

// Create inserts a new item and returns it with its assigned id.
func (s *SQLStore) Create(
	ctx context.Context,
	name string,
	value string,
) (*Item, error) {
	item := Item{
		Name:  name,
		Value: value,
	}
	err := s.db.QueryRowContext(
		ctx,
		"INSERT INTO items (name, value) VALUES ($1, $2) RETURNING id",
		name,
		value,
	).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	s.logger.Debug(
		"item created",
		slog.Int64("id", item.ID),
		slog.String("name", item.Name),
	)

	return &item, nil
}

// Update rewrites name and value of the matching row. A missing id
// affects zero rows and reports success.
func (s *SQLStore) Update(
	ctx context.Context,
	item Item,
) error {
	_, err := s.db.ExecContext(
		ctx,
		"UPDATE items SET name = $1, value = $2 WHERE id = $3",
		item.Name,
		item.Value,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	return nil
}

// Delete removes the matching row. A missing id affects zero rows and
// reports success.
func (s *SQLStore) Delete(
	ctx context.Context,
	id int64,
) error {
	_, err := s.db.ExecContext(
		ctx,
		"DELETE FROM items WHERE id = $1",
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	return nil
}

// DeleteLast removes the row with the highest id and returns it in a
// single statement.
func (s *SQLStore) DeleteLast(
	ctx context.Context,
) (*Item, error) {
	var item Item
	err := s.db.QueryRowContext(
		ctx,
		"DELETE FROM items WHERE id = (SELECT MAX(id) FROM items) RETURNING id, name, value",
	).Scan(&item.ID, &item.Name, &item.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("deleting last item: %w", err)
	}

	return &item, nil
}

// GetUsernameByToken returns the username owning token.
func (s *SQLStore) GetUsernameByToken(
	ctx context.Context,
	token string,
) (string, error) {
	var username string
	err := s.db.QueryRowContext(
		ctx,
		"SELECT username FROM users WHERE token = $1",
		token,
	).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("resolving token: %w", err)
	}

	return username, nil
}

// GetTokenByCredentials returns the token for an exact
// username/password row. Credentials are compared by plain equality in
// the query.
func (s *SQLStore) GetTokenByCredentials(
	ctx context.Context,
	username string,
	password string,
) (string, error) {
	var token string
	err := s.db.QueryRowContext(
		ctx,
		"SELECT token FROM users WHERE username = $1 AND password = $2",
		username,
		password,
	).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("checking credentials: %w", err)
	}

	return token, nil
}
