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

import "time"

// Account represents a GitHub user identity. Login is the identity key;
// ID is stable even if the login changes. Profile fields are optional and
// may be zero for accounts without a full profile (bots, deleted accounts).
// Accounts are immutable once fetched.
type Account struct {
	Login           string    `json:"login"`
	ID              int64     `json:"id"`
	Name            string    `json:"name,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	TwitterUsername string    `json:"twitter_username,omitempty"`
}

// PullRequest represents a pull request with the metadata needed for
// contributor aggregation. Immutable once fetched.
type PullRequest struct {
	Number    int       `json:"number"`
	Author    Account   `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Owner     string    `json:"owner"`
	Repo      string    `json:"repo"`
}

// AccountPage is one page of accounts from a paginated listing, plus the
// continuation cursor for the next page. The page is transient: callers
// decode it into records and discard it.
type AccountPage struct {
	Accounts    []Account
	HasNextPage bool
	EndCursor   string
}

// PullRequestPage is one page of pull requests from a repository listing.
type PullRequestPage struct {
	PullRequests []PullRequest
	HasNextPage  bool
	EndCursor    string
}

// FetchOptions configures a single page fetch.
type FetchOptions struct {
	// PageSize controls how many records to fetch per page.
	// Defaults to 50 if not specified. Maximum is 100 per GitHub's API limits.
	PageSize int

	// After is the opaque cursor for pagination. Empty string fetches from
	// the beginning. Use the page's EndCursor for the next page; cursors
	// from any other source are rejected.
	After string
}

// Default values for fetch operations
const (
	defaultPageSize = 50
	maxPageSize     = 100
)
