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

package api

import (
	"github.com/itembench/itembench/internal/api/items"
	"github.com/itembench/itembench/internal/store"
)

// RegisterItemRoutes attaches the item CRUD routes, all guarded by the
// bearer-token auth gate.
func (s *Server) RegisterItemRoutes(
	itemStore store.ItemStore,
	userStore store.UserStore,
) {
	h := items.New(s.logger, itemStore)

	g := s.Echo.Group("", authMiddleware(userStore, s.logger))
	g.GET("/items", h.List)
	g.GET("/item", h.Get)
	g.GET("/item/last", h.GetLast)
	g.POST("/items/create", h.Create)
	g.PUT("/item/update", h.Update)
	g.DELETE("/item/delete", h.Delete)
	g.DELETE("/item/last/delete", h.DeleteLast)
}
