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
	"fmt"
	"os"
	"strconv"

	"github.com/sirseerhq/sirseer-social/internal/contrib"
	"github.com/spf13/cobra"
)

func newListContributorsCommand() *cobra.Command {
	var (
		flags   commonFlags
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list-pr-contributors <owner>/<repo>",
		Short: "Summarize a repository's pull requests per contributor",
		Long: `Summarize a repository's full pull request history per contributor.

Each output row covers one contributor: login, numeric ID and pull request
count. When a usable token is available, each row additionally carries the
account's age in days at its first pull request, display name, whether you
follow the contributor, whether they follow you, and their Twitter handle.
Contributors whose profile no longer exists keep their row with -1 for the
age and empty profile fields.

The repository must be specified in the format: <owner>/<repo>
For example: golang/go, kubernetes/kubernetes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListContributors(cmd.Context(), &flags, args[0], verbose)
		},
	}

	flags.registerPaged(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report progress on stderr")
	return cmd
}

// runListContributors executes the contributor aggregation command.
func runListContributors(ctx context.Context, flags *commonFlags, repoArg string, verbose bool) error {
	// Parse before any network call so a bad path fails fast.
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, client, err := flags.setup()
	if err != nil {
		return err
	}

	writer, err := flags.newRowWriter()
	if err != nil {
		return err
	}
	defer writer.Close()

	agg := contrib.NewAggregator(client, cfg.Defaults.PageSize)
	if verbose {
		agg.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	summaries, err := agg.Aggregate(ctx, owner, repo)
	if err != nil {
		return err
	}

	for _, summary := range summaries {
		if err := writer.Write(summaryRow(summary)); err != nil {
			return err
		}
	}
	return nil
}

// summaryRow renders one contributor summary. The basic shape is
// login,id,count; the enriched shape appends age_days, display name and
// follow-relationship fields.
func summaryRow(s contrib.Summary) []string {
	row := []string{
		s.Login,
		strconv.FormatInt(s.ID, 10),
		strconv.Itoa(s.PullRequests),
	}
	if s.Enrichment == nil {
		return row
	}
	return append(row,
		strconv.FormatInt(s.Enrichment.AccountAgeDays, 10),
		s.Enrichment.Name,
		strconv.FormatBool(s.Enrichment.YouFollow),
		strconv.FormatBool(s.Enrichment.FollowsYou),
		s.Enrichment.TwitterUsername,
	)
}
