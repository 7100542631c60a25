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

package main

import (
	"context"
	"strconv"

	"github.com/sirseerhq/sirseer-social/internal/github"
	"github.com/sirseerhq/sirseer-social/internal/output"
	"github.com/sirseerhq/sirseer-social/internal/social"
	"github.com/sirseerhq/sirseer-social/internal/stream"
	"github.com/spf13/cobra"
)

// accountStreamFunc selects which listing of the authenticated user a
// command streams.
type accountStreamFunc func(client github.Client, pageSize int) *stream.Stream[github.Account]

func newListFollowersCommand() *cobra.Command {
	return newListCommand(
		"list-followers",
		"List the accounts following the authenticated user",
		social.Followers,
	)
}

func newListFollowingCommand() *cobra.Command {
	return newListCommand(
		"list-following",
		"List the accounts the authenticated user follows",
		social.Following,
	)
}

func newListBlocksCommand() *cobra.Command {
	return newListCommand(
		"list-blocks",
		"List the accounts the authenticated user has blocked",
		social.Blocked,
	)
}

// newListCommand builds one of the three account listings. All three share
// the same shape: stream pages from the API and write one login,id row per
// account as soon as it arrives.
func newListCommand(use, short string, accounts accountStreamFunc) *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + ` and write one CSV row per account to the output.

Rows are written incrementally as the API yields them, so output for large
listings starts immediately instead of waiting for the final page.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set the configured token environment variable (default GITHUB_TOKEN)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), &flags, accounts)
		},
	}

	flags.registerPaged(cmd)
	return cmd
}

// runList executes a listing command.
func runList(ctx context.Context, flags *commonFlags, accounts accountStreamFunc) error {
	cfg, client, err := flags.setup()
	if err != nil {
		return err
	}

	writer, err := flags.newRowWriter()
	if err != nil {
		return err
	}
	defer writer.Close()

	return writeAccounts(ctx, client, cfg.Defaults.PageSize, accounts, writer)
}

// writeAccounts streams the listing into the writer, one login,id row per
// account, written as soon as the stream yields it.
func writeAccounts(ctx context.Context, client github.Client, pageSize int, accounts accountStreamFunc, writer output.RowWriter) error {
	return accounts(client, pageSize).ForEach(ctx, func(account github.Account) error {
		return writer.Write([]string{account.Login, strconv.FormatInt(account.ID, 10)})
	})
}
