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

package contrib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirseerhq/sirseer-social/internal/github"
)

func day(d int) time.Time {
	return time.Date(2023, time.January, d, 0, 0, 0, 0, time.UTC)
}

func pr(login string, id int64, createdAt time.Time) github.PullRequest {
	return github.PullRequest{
		Author:    github.Account{Login: login, ID: id},
		CreatedAt: createdAt,
		Owner:     "acme",
		Repo:      "widgets",
	}
}

func TestAggregateBasicShape(t *testing.T) {
	// Unauthenticated client: two contributors, u1 with two pull requests,
	// u2 with one, interleaved across pages.
	mock := github.NewMockClient()
	mock.PullRequestPages = [][]github.PullRequest{
		{pr("u2", 2, day(5)), pr("u1", 1, day(3))},
		{pr("u1", 1, day(1))},
	}

	agg := NewAggregator(mock, 50)
	summaries, err := agg.Aggregate(context.Background(), "acme", "widgets")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	u1 := summaries[0]
	if u1.Login != "u1" || u1.ID != 1 {
		t.Errorf("summaries[0] = %s/%d, want u1/1", u1.Login, u1.ID)
	}
	if u1.PullRequests != 2 {
		t.Errorf("u1 pull requests = %d, want 2", u1.PullRequests)
	}
	if !u1.FirstPullRequestAt.Equal(day(1)) {
		t.Errorf("u1 first PR at %v, want %v", u1.FirstPullRequestAt, day(1))
	}
	if u1.Enrichment != nil {
		t.Error("unauthenticated aggregation should not carry enrichment")
	}

	u2 := summaries[1]
	if u2.Login != "u2" || u2.PullRequests != 1 {
		t.Errorf("summaries[1] = %s with %d PRs, want u2 with 1", u2.Login, u2.PullRequests)
	}
}

func TestAggregateSplitsSameLoginDifferentID(t *testing.T) {
	// A login recycled after account deletion shows up with a new numeric ID;
	// the two identities must not be merged.
	mock := github.NewMockClient()
	mock.PullRequestPages = [][]github.PullRequest{
		{pr("ghost", 10, day(1)), pr("ghost", 20, day(2))},
	}

	summaries, err := NewAggregator(mock, 50).Aggregate(context.Background(), "acme", "widgets")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2 distinct identities", len(summaries))
	}
	if summaries[0].ID != 10 || summaries[1].ID != 20 {
		t.Errorf("identities sorted by ID within login: got %d, %d", summaries[0].ID, summaries[1].ID)
	}
}

func TestAggregateEnriched(t *testing.T) {
	mock := github.NewMockClient()
	mock.Viewer = "me"
	mock.PullRequestPages = [][]github.PullRequest{
		{pr("alice", 1, day(31)), pr("bot", 99, day(2))},
	}
	mock.Profiles["alice"] = github.Account{
		Login:           "alice",
		ID:              1,
		Name:            "Alice Doe",
		CreatedAt:       day(1),
		TwitterUsername: "alicedoe",
	}
	mock.FollowerPages = [][]github.Account{{{Login: "alice", ID: 1}}}
	mock.FollowingPages = [][]github.Account{{}}

	summaries, err := NewAggregator(mock, 50).Aggregate(context.Background(), "acme", "widgets")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	alice := summaries[0]
	if alice.Enrichment == nil {
		t.Fatal("authenticated aggregation must enrich every summary")
	}
	if alice.Enrichment.AccountAgeDays != 30 {
		t.Errorf("alice age = %d days, want 30", alice.Enrichment.AccountAgeDays)
	}
	if alice.Enrichment.Name != "Alice Doe" {
		t.Errorf("alice name = %q, want %q", alice.Enrichment.Name, "Alice Doe")
	}
	if alice.Enrichment.TwitterUsername != "alicedoe" {
		t.Errorf("alice twitter = %q, want %q", alice.Enrichment.TwitterUsername, "alicedoe")
	}
	if alice.Enrichment.YouFollow {
		t.Error("viewer does not follow alice")
	}
	if !alice.Enrichment.FollowsYou {
		t.Error("alice follows the viewer")
	}

	// bot has no profile: sentinel age, empty name, follow flags still real.
	bot := summaries[1]
	if bot.Enrichment == nil {
		t.Fatal("missing-profile contributor must still be enriched")
	}
	if bot.Enrichment.AccountAgeDays != MissingAccountAge {
		t.Errorf("bot age = %d, want sentinel %d", bot.Enrichment.AccountAgeDays, MissingAccountAge)
	}
	if bot.Enrichment.Name != "" || bot.Enrichment.TwitterUsername != "" {
		t.Error("missing-profile contributor must carry empty profile fields")
	}
}

func TestAggregateFetchesEachProfileOnce(t *testing.T) {
	mock := github.NewMockClient()
	mock.Viewer = "me"
	mock.PullRequestPages = [][]github.PullRequest{
		{pr("alice", 1, day(1)), pr("alice", 1, day(2)), pr("alice", 1, day(3))},
	}
	mock.Profiles["alice"] = github.Account{Login: "alice", ID: 1, CreatedAt: day(1)}
	mock.FollowerPages = [][]github.Account{{}}
	mock.FollowingPages = [][]github.Account{{}}

	if _, err := NewAggregator(mock, 50).Aggregate(context.Background(), "acme", "widgets"); err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if mock.GetAccountCalls != 1 {
		t.Errorf("GetAccount called %d times for one distinct login, want 1", mock.GetAccountCalls)
	}
}

func TestAggregatePropagatesStreamError(t *testing.T) {
	mock := github.NewMockClient()
	mock.Err = errors.New("boom")

	_, err := NewAggregator(mock, 50).Aggregate(context.Background(), "acme", "widgets")
	if err == nil {
		t.Fatal("expected pull-request fetch error to propagate")
	}
}

func TestAggregateEmptyRepository(t *testing.T) {
	mock := github.NewMockClient()
	mock.PullRequestPages = [][]github.PullRequest{}

	summaries, err := NewAggregator(mock, 50).Aggregate(context.Background(), "acme", "widgets")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("got %d summaries for empty repository, want 0", len(summaries))
	}
}

func TestAgeInDaysTruncates(t *testing.T) {
	created := day(1)
	firstPR := day(2).Add(23 * time.Hour)
	if got := ageInDays(created, firstPR); got != 1 {
		t.Errorf("ageInDays = %d, want 1 (partial days truncate)", got)
	}
}
