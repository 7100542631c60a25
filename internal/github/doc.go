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

// Package github provides a client for the GitHub REST API covering the
// social-graph and pull-request surfaces used by sirseer-social: follower,
// following and block listings, account profiles, follow-relationship checks,
// account blocking, and repository pull-request pages.
//
// The package includes:
//   - A Client interface abstracting all remote operations
//   - A REST implementation backed by google/go-github with oauth2 auth
//   - A mock client for testing
//   - Type definitions for accounts and pull requests
//
// All listing operations are page-at-a-time: each call performs exactly one
// network request and returns the page's records plus an opaque continuation
// cursor. Errors are mapped to the sentinel errors of internal/errors so
// callers can classify failures with errors.Is.
//
// Basic usage:
//
//	client, err := github.NewRESTClient("your-github-token", "https://api.github.com")
//	if err != nil {
//	    // Handle error
//	}
//	page, err := client.FetchFollowerPage(ctx, github.FetchOptions{PageSize: 50})
//	if err != nil {
//	    // Handle error
//	}
//	for _, account := range page.Accounts {
//	    // Process account
//	}
package github
