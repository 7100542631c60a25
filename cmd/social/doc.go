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

// Package main implements the sirseer-social command-line interface.
// This tool queries the social graph of the authenticated GitHub user
// (followers, following, blocked accounts, follow checks, bulk blocking)
// and aggregates a repository's pull requests into per-contributor
// summaries, emitting results as CSV rows.
//
// The CLI supports:
//   - Streaming listings (followers, following, blocks) that write each
//     row as soon as the API yields it
//   - Contributor aggregation with optional enrichment when a token with
//     a usable credential is available
//   - Bulk blocking of accounts read from standard input
//   - Customizable output destinations (stdout or file)
//   - GitHub token authentication via flag or environment variable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	sirseer-social <command> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-social list-pr-contributors golang/go --output contributors.csv
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization/input error
//   - 3: Network error
package main
