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
	"fmt"
	"os"

	"github.com/sirseerhq/sirseer-social/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sirseer-social",
		Short: "Query the social graph and contributor activity of GitHub accounts",
		Long: `SirSeer Social queries the follower graph of the authenticated GitHub user
and the contributor activity of repositories. Listings stream results as CSV
rows while they arrive; contributor aggregation groups a repository's full
pull request history by author and optionally enriches each contributor with
profile and follow-relationship data.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(
		newListFollowersCommand(),
		newListFollowingCommand(),
		newListBlocksCommand(),
		newListContributorsCommand(),
		newCheckFollowCommand(),
		newBlockUsersCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}
