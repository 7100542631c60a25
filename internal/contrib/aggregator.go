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

// Package contrib aggregates a repository's pull requests into
// per-contributor summaries. Aggregation requires a complete pass over the
// pull-request stream: grouping cannot begin until the stream is exhausted,
// so this is the one operation that buffers instead of streaming.
//
// When the client is authenticated, each summary is enriched with profile
// and follow-relationship data: the follow graph is snapshotted once and
// profiles are batch-fetched once for the distinct contributor logins,
// rather than once per contributor.
package contrib

import (
	"context"
	"sort"
	"time"

	"github.com/sirseerhq/sirseer-social/internal/github"
	"github.com/sirseerhq/sirseer-social/internal/social"
	"github.com/sirseerhq/sirseer-social/internal/stream"
)

// MissingAccountAge is the sentinel age emitted for contributors whose
// profile could not be fetched (deleted accounts, bots such as dependabot).
// Such contributors still get a summary row; only the enrichment fields
// carry sentinels.
const MissingAccountAge = -1

// Summary is the aggregate for one contributor: every pull request in the
// repository belongs to exactly one Summary.
type Summary struct {
	Login              string
	ID                 int64
	PullRequests       int
	FirstPullRequestAt time.Time

	// Enrichment is nil when the client is unauthenticated (basic summary)
	// and set otherwise (enriched summary). The CLI resolves the two shapes
	// into the corresponding output rows.
	Enrichment *Enrichment
}

// Enrichment carries the authenticated-only fields of a Summary.
type Enrichment struct {
	// AccountAgeDays is the account's age in whole days at the time of its
	// first pull request, or MissingAccountAge when the profile is unknown.
	AccountAgeDays  int64
	Name            string
	YouFollow       bool
	FollowsYou      bool
	TwitterUsername string
}

// Aggregator computes contributor summaries for a repository.
type Aggregator struct {
	client   github.Client
	pageSize int

	// Logf, when set, receives progress messages for the long-running
	// phases of aggregation.
	Logf func(format string, args ...any)
}

// NewAggregator creates an Aggregator using the given client and page size.
func NewAggregator(client github.Client, pageSize int) *Aggregator {
	return &Aggregator{client: client, pageSize: pageSize}
}

// PullRequests returns the stream of a repository's pull requests.
func PullRequests(client github.Client, owner, repo string, pageSize int) *stream.Stream[github.PullRequest] {
	return stream.New(func(ctx context.Context, after string) ([]github.PullRequest, stream.PageInfo, error) {
		page, err := client.FetchPullRequestPage(ctx, owner, repo, github.FetchOptions{
			PageSize: pageSize,
			After:    after,
		})
		if err != nil {
			return nil, stream.PageInfo{}, err
		}
		return page.PullRequests, stream.PageInfo{
			HasNextPage: page.HasNextPage,
			EndCursor:   page.EndCursor,
		}, nil
	})
}

// Aggregate materializes the repository's full pull-request stream, groups
// it by contributor, and returns one Summary per contributor sorted by
// login. Summaries are enriched only when the authentication probe succeeds.
func (a *Aggregator) Aggregate(ctx context.Context, owner, repo string) ([]Summary, error) {
	a.logf("Loading pull requests from %s/%s", owner, repo)
	prs, err := stream.Collect(ctx, PullRequests(a.client, owner, repo, a.pageSize))
	if err != nil {
		return nil, err
	}

	summaries := groupByContributor(prs)

	// Enrichment is available only with a usable credential. Any probe
	// failure means the basic shape, not an aborted run.
	if _, err := a.client.AuthenticatedLogin(ctx); err != nil {
		return summaries, nil
	}

	if err := a.enrich(ctx, summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// groupByContributor groups pull requests by (login, id), counting per group
// and keeping the earliest creation timestamp. Output order is deterministic:
// groups are sorted by login.
func groupByContributor(prs []github.PullRequest) []Summary {
	type key struct {
		login string
		id    int64
	}

	groups := make(map[key]*Summary)
	for _, pr := range prs {
		k := key{login: pr.Author.Login, id: pr.Author.ID}
		group, ok := groups[k]
		if !ok {
			group = &Summary{
				Login:              k.login,
				ID:                 k.id,
				FirstPullRequestAt: pr.CreatedAt,
			}
			groups[k] = group
		}
		group.PullRequests++
		if pr.CreatedAt.Before(group.FirstPullRequestAt) {
			group.FirstPullRequestAt = pr.CreatedAt
		}
	}

	summaries := make([]Summary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, *group)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Login != summaries[j].Login {
			return summaries[i].Login < summaries[j].Login
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

// enrich attaches follow-relationship and profile data to every summary.
// The follow graph is fetched once and profiles once per distinct login;
// contributors missing from the profile batch get sentinel values instead
// of failing the aggregation.
func (a *Aggregator) enrich(ctx context.Context, summaries []Summary) error {
	a.logf("Loading follower information")
	relationships, err := social.BuildRelationships(ctx, a.client, a.pageSize)
	if err != nil {
		return err
	}

	logins := make([]string, 0, len(summaries))
	for i := range summaries {
		logins = append(logins, summaries[i].Login)
	}

	a.logf("Loading profile information for %d contributors", len(logins))
	profiles, err := social.UserInfo(ctx, a.client, logins)
	if err != nil {
		return err
	}

	for i := range summaries {
		s := &summaries[i]
		enrichment := &Enrichment{
			AccountAgeDays: MissingAccountAge,
			YouFollow:      relationships.Follows(s.Login),
			FollowsYou:     relationships.FollowedBy(s.Login),
		}
		if profile, ok := profiles[s.Login]; ok {
			enrichment.AccountAgeDays = ageInDays(profile.CreatedAt, s.FirstPullRequestAt)
			enrichment.Name = profile.Name
			enrichment.TwitterUsername = profile.TwitterUsername
		}
		s.Enrichment = enrichment
	}
	return nil
}

// ageInDays is the whole number of days between account creation and the
// first pull request, truncated toward zero.
func ageInDays(createdAt, firstPR time.Time) int64 {
	return int64(firstPR.Sub(createdAt).Hours() / 24)
}

func (a *Aggregator) logf(format string, args ...any) {
	if a.Logf != nil {
		a.Logf(format, args...)
	}
}
