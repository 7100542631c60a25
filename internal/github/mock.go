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

package github

import (
	"context"
	"fmt"
	"strconv"

	socialerrors "github.com/sirseerhq/sirseer-social/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// Listings are served from fixed page fixtures using the same opaque-cursor
// scheme as the REST client, so pagination behavior is exercised end to end.
type MockClient struct {
	// Page fixtures per listing; each inner slice is one page.
	FollowerPages    [][]Account
	FollowingPages   [][]Account
	BlockedPages     [][]Account
	PullRequestPages [][]PullRequest

	// Profiles returned by GetAccount, keyed by login. Logins absent from
	// the map yield ErrNotFound.
	Profiles map[string]Account

	// Viewer is the authenticated login; empty means unauthenticated.
	Viewer string

	// Follows maps follower -> set of targets they follow.
	Follows map[string]map[string]bool

	// AlreadyBlocked marks accounts blocked before the test starts.
	AlreadyBlocked map[string]bool

	// BlockErrors makes BlockAccount fail for specific logins.
	BlockErrors map[string]error

	// Err, when set, is returned by every page fetch.
	Err error

	// Track calls for verification
	FetchCalls      int
	GetAccountCalls int
	BlockedLogins   []string
	LastOpts        FetchOptions
}

// NewMockClient creates a mock client with empty fixtures.
func NewMockClient() *MockClient {
	return &MockClient{
		Profiles:       make(map[string]Account),
		Follows:        make(map[string]map[string]bool),
		AlreadyBlocked: make(map[string]bool),
		BlockErrors:    make(map[string]error),
	}
}

// FetchFollowerPage implements the Client interface.
func (m *MockClient) FetchFollowerPage(ctx context.Context, opts FetchOptions) (*AccountPage, error) {
	items, hasNext, cursor, err := mockPage(m, ctx, m.FollowerPages, opts)
	if err != nil {
		return nil, err
	}
	return &AccountPage{Accounts: items, HasNextPage: hasNext, EndCursor: cursor}, nil
}

// FetchFollowingPage implements the Client interface.
func (m *MockClient) FetchFollowingPage(ctx context.Context, opts FetchOptions) (*AccountPage, error) {
	items, hasNext, cursor, err := mockPage(m, ctx, m.FollowingPages, opts)
	if err != nil {
		return nil, err
	}
	return &AccountPage{Accounts: items, HasNextPage: hasNext, EndCursor: cursor}, nil
}

// FetchBlockedPage implements the Client interface.
func (m *MockClient) FetchBlockedPage(ctx context.Context, opts FetchOptions) (*AccountPage, error) {
	items, hasNext, cursor, err := mockPage(m, ctx, m.BlockedPages, opts)
	if err != nil {
		return nil, err
	}
	return &AccountPage{Accounts: items, HasNextPage: hasNext, EndCursor: cursor}, nil
}

// FetchPullRequestPage implements the Client interface.
func (m *MockClient) FetchPullRequestPage(ctx context.Context, owner, repo string, opts FetchOptions) (*PullRequestPage, error) {
	items, hasNext, cursor, err := mockPage(m, ctx, m.PullRequestPages, opts)
	if err != nil {
		return nil, err
	}
	return &PullRequestPage{PullRequests: items, HasNextPage: hasNext, EndCursor: cursor}, nil
}

// GetAccount implements the Client interface.
func (m *MockClient) GetAccount(ctx context.Context, login string) (*Account, error) {
	m.GetAccountCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	account, ok := m.Profiles[login]
	if !ok {
		return nil, fmt.Errorf("account %q not found: %w", login, socialerrors.ErrNotFound)
	}
	return &account, nil
}

// AuthenticatedLogin implements the Client interface.
func (m *MockClient) AuthenticatedLogin(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Viewer == "" {
		return "", fmt.Errorf("no credential configured: %w", socialerrors.ErrInvalidToken)
	}
	return m.Viewer, nil
}

// CheckFollows implements the Client interface.
func (m *MockClient) CheckFollows(ctx context.Context, follower, target string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return m.Follows[follower][target], nil
}

// BlockAccount implements the Client interface.
func (m *MockClient) BlockAccount(ctx context.Context, login string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := m.BlockErrors[login]; err != nil {
		return false, err
	}
	if m.AlreadyBlocked[login] {
		return false, nil
	}
	m.AlreadyBlocked[login] = true
	m.BlockedLogins = append(m.BlockedLogins, login)
	return true, nil
}

// mockPage serves one fixture page using the production cursor scheme. The
// type parameter comes from the fixture slice, so a single helper covers both
// account and pull-request listings.
func mockPage[T any](m *MockClient, ctx context.Context, pages [][]T, opts FetchOptions) ([]T, bool, string, error) {
	m.FetchCalls++
	m.LastOpts = opts

	if err := ctx.Err(); err != nil {
		return nil, false, "", err
	}
	if m.Err != nil {
		return nil, false, "", m.Err
	}

	idx := 0
	if opts.After != "" {
		var err error
		idx, err = strconv.Atoi(opts.After)
		if err != nil || idx <= 0 {
			return nil, false, "", fmt.Errorf("pagination cursor %q was not produced by this client: %w",
				opts.After, socialerrors.ErrMalformedInput)
		}
	}
	if idx >= len(pages) {
		return nil, false, "", nil
	}

	hasNext := idx < len(pages)-1
	cursor := ""
	if hasNext {
		cursor = strconv.Itoa(idx + 1)
	}
	return pages[idx], hasNext, cursor, nil
}
