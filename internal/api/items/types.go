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

package items

import (
	"log/slog"

	"github.com/itembench/itembench/internal/store"
)

// Items implementation of the item CRUD operations.
type Items struct {
	// ItemStore provides item persistence.
	ItemStore store.ItemStore
	logger    *slog.Logger
}

// CreateRequest is the body of POST /items/create. Fields are not validated
// beyond JSON decoding; absent fields become empty strings.
type CreateRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UpdateRequest is the body of PUT /item/update. Pointer fields distinguish
// an absent field from an empty one.
type UpdateRequest struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

// DeleteLastResponse reports the removed row.
type DeleteLastResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}
