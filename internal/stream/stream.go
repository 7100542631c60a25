// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stream provides a lazy, single-pass record stream backed by a
// cursor-paginated fetch function. A Stream turns repeated page fetches into
// a flat sequence of typed records: the next page is requested only after
// every record of the current page has been consumed, so pagination stays
// strictly sequential and memory usage is bounded by one page.
//
// A Stream is not restartable and not safe for concurrent use. Once Next
// returns an error the stream is finished: the error is sticky and any
// undelivered records from the failed page are discarded.
//
// If the remote collection mutates between page fetches, records may be
// duplicated or missed; no cross-page consistency is guaranteed.
package stream

import (
	"context"
	"errors"
)

// ErrEndOfStream signals normal termination of a Stream. It is returned by
// Next after the last record of the terminal page has been delivered.
var ErrEndOfStream = errors.New("end of stream")

// PageInfo carries the continuation state returned with each fetched page.
// An absent cursor (HasNextPage false) marks the terminal page.
type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

// PageFunc fetches one page of records. The after argument is the opaque
// cursor from the previous page's PageInfo; the empty string requests the
// first page. Implementations perform exactly one network call per
// invocation and must not retry.
type PageFunc[T any] func(ctx context.Context, after string) ([]T, PageInfo, error)

// Stream is a pull-based iterator over a paginated collection.
type Stream[T any] struct {
	fetch   PageFunc[T]
	buf     []T
	pos     int
	cursor  string
	hasMore bool
	started bool
	err     error
}

// New creates a Stream backed by the given page fetch function.
func New[T any](fetch PageFunc[T]) *Stream[T] {
	return &Stream[T]{fetch: fetch}
}

// Next returns the next record in the stream. It returns ErrEndOfStream once
// the terminal page is exhausted, and any fetch error verbatim. Errors are
// sticky: every call after a failure returns the same error, and no further
// pages are fetched.
func (s *Stream[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if s.err != nil {
		return zero, s.err
	}

	for s.pos >= len(s.buf) {
		if s.started && !s.hasMore {
			s.err = ErrEndOfStream
			s.buf = nil
			return zero, s.err
		}

		items, info, err := s.fetch(ctx, s.cursor)
		if err != nil {
			// Drop the page buffer: a failed page yields nothing.
			s.err = err
			s.buf = nil
			return zero, err
		}

		s.started = true
		s.buf = items
		s.pos = 0
		s.cursor = info.EndCursor
		s.hasMore = info.HasNextPage
	}

	item := s.buf[s.pos]
	s.pos++
	return item, nil
}

// ForEach consumes the remainder of the stream, invoking fn for each record.
// It returns nil on normal termination. An error from fn stops consumption
// immediately and is returned to the caller.
func (s *Stream[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for {
		item, err := s.Next(ctx)
		if errors.Is(err, ErrEndOfStream) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}

// Collect drains the stream into a slice. Prefer ForEach for large
// collections that can be processed incrementally.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	var out []T
	if err := s.ForEach(ctx, func(item T) error {
		out = append(out, item)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
