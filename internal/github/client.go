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

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
//
// Every Fetch*Page method performs exactly one network call and supports
// opaque-cursor pagination through opts.After.
type Client interface {
	// FetchFollowerPage retrieves a page of accounts that follow the
	// authenticated user.
	FetchFollowerPage(ctx context.Context, opts FetchOptions) (*AccountPage, error)

	// FetchFollowingPage retrieves a page of accounts the authenticated
	// user follows.
	FetchFollowingPage(ctx context.Context, opts FetchOptions) (*AccountPage, error)

	// FetchBlockedPage retrieves a page of accounts the authenticated user
	// has blocked.
	FetchBlockedPage(ctx context.Context, opts FetchOptions) (*AccountPage, error)

	// FetchPullRequestPage retrieves a page of pull requests from the
	// specified repository, in every state.
	FetchPullRequestPage(ctx context.Context, owner, repo string, opts FetchOptions) (*PullRequestPage, error)

	// GetAccount retrieves the full profile of a single account. Unknown
	// logins yield an error satisfying errors.Is(err, ErrNotFound).
	GetAccount(ctx context.Context, login string) (*Account, error)

	// AuthenticatedLogin returns the login of the authenticated user. It
	// doubles as the capability probe: an error means the client has no
	// usable credential and enrichment paths are unavailable.
	AuthenticatedLogin(ctx context.Context) (string, error)

	// CheckFollows reports whether follower follows target. This is a direct
	// relationship query, never a scan of either account's listings.
	CheckFollows(ctx context.Context, follower, target string) (bool, error)

	// BlockAccount blocks the given account on behalf of the authenticated
	// user. It returns true if the account transitioned from unblocked to
	// blocked, false if it was already blocked.
	BlockAccount(ctx context.Context, login string) (bool, error)
}
