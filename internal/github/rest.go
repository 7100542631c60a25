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
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gogithub "github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	socialerrors "github.com/sirseerhq/sirseer-social/internal/errors"
	"github.com/sirseerhq/sirseer-social/internal/giterror"
	"github.com/sirseerhq/sirseer-social/pkg/version"
)

// RESTClient implements the Client interface using GitHub's REST API via
// the go-github library. The library owns the HTTP transport concerns
// (connection pooling, TLS, JSON decoding); this type adapts its typed
// services to the page-at-a-time Client contract and maps its errors to
// our sentinel taxonomy.
//
// The client never retries. A rate-limited response surfaces as ErrRateLimit
// and the caller decides whether to abort.
type RESTClient struct {
	gh        *gogithub.Client
	inspector giterror.Inspector
}

// NewRESTClient creates a GitHub REST client. The token may be empty, in
// which case only unauthenticated operations succeed. A non-empty endpoint
// overrides the default https://api.github.com base URL (GitHub Enterprise,
// test servers).
func NewRESTClient(token, endpoint string) (*RESTClient, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := gogithub.NewClient(httpClient)
	client.UserAgent = fmt.Sprintf("sirseer-social/%s", version.Version)

	if endpoint != "" {
		base := endpoint
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		baseURL, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid api endpoint %q: %w", endpoint, err)
		}
		client.BaseURL = baseURL
	}

	return &RESTClient{
		gh:        client,
		inspector: giterror.NewInspector(),
	}, nil
}

// FetchFollowerPage implements the Client interface.
func (c *RESTClient) FetchFollowerPage(ctx context.Context, opts FetchOptions) (*AccountPage, error) {
	return c.listAccounts(ctx, opts, "followers", func(lo *gogithub.ListOptions) ([]*gogithub.User, *gogithub.Response, error) {
		return c.gh.Users.ListFollowers(ctx, "", lo)
	})
}

// FetchFollowingPage implements the Client interface.
func (c *RESTClient) FetchFollowingPage(ctx context.Context, opts FetchOptions) (*AccountPage, error) {
	return c.listAccounts(ctx, opts, "following", func(lo *gogithub.ListOptions) ([]*gogithub.User, *gogithub.Response, error) {
		return c.gh.Users.ListFollowing(ctx, "", lo)
	})
}

// FetchBlockedPage implements the Client interface.
func (c *RESTClient) FetchBlockedPage(ctx context.Context, opts FetchOptions) (*AccountPage, error) {
	return c.listAccounts(ctx, opts, "blocks", func(lo *gogithub.ListOptions) ([]*gogithub.User, *gogithub.Response, error) {
		return c.gh.Users.ListBlockedUsers(ctx, lo)
	})
}

// FetchPullRequestPage implements the Client interface. Pull requests of
// every state are listed, in the API's default ordering.
func (c *RESTClient) FetchPullRequestPage(ctx context.Context, owner, repo string, opts FetchOptions) (*PullRequestPage, error) {
	lo, err := listOptions(opts)
	if err != nil {
		return nil, err
	}

	prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, &gogithub.PullRequestListOptions{
		State:       "all",
		ListOptions: *lo,
	})
	if err != nil {
		return nil, c.mapError(err, fmt.Sprintf("pull requests for %s/%s", owner, repo))
	}

	page := &PullRequestPage{
		PullRequests: make([]PullRequest, 0, len(prs)),
	}
	for _, pr := range prs {
		page.PullRequests = append(page.PullRequests, PullRequest{
			Number: pr.GetNumber(),
			Author: Account{
				Login: pr.GetUser().GetLogin(),
				ID:    pr.GetUser().GetID(),
			},
			CreatedAt: pr.GetCreatedAt().Time,
			Owner:     owner,
			Repo:      repo,
		})
	}
	setNextCursor(&page.HasNextPage, &page.EndCursor, resp)

	return page, nil
}

// GetAccount implements the Client interface.
func (c *RESTClient) GetAccount(ctx context.Context, login string) (*Account, error) {
	user, _, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		return nil, c.mapError(err, fmt.Sprintf("account %q", login))
	}
	account := convertUser(user)
	return &account, nil
}

// AuthenticatedLogin implements the Client interface.
func (c *RESTClient) AuthenticatedLogin(ctx context.Context) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", c.mapError(err, "authenticated user")
	}
	return user.GetLogin(), nil
}

// CheckFollows implements the Client interface. The API answers the
// follower/target pair directly, so the cost is one request regardless of
// how many accounts either side follows.
func (c *RESTClient) CheckFollows(ctx context.Context, follower, target string) (bool, error) {
	follows, _, err := c.gh.Users.IsFollowing(ctx, follower, target)
	if err != nil {
		return false, c.mapError(err, fmt.Sprintf("follow check %s -> %s", follower, target))
	}
	return follows, nil
}

// BlockAccount implements the Client interface. The block endpoint is
// idempotent on the API side, so the prior state is probed first to report
// whether this call actually changed anything.
func (c *RESTClient) BlockAccount(ctx context.Context, login string) (bool, error) {
	blocked, _, err := c.gh.Users.IsBlocked(ctx, login)
	if err != nil {
		return false, c.mapError(err, fmt.Sprintf("block state of %q", login))
	}
	if blocked {
		return false, nil
	}

	if _, err := c.gh.Users.BlockUser(ctx, login); err != nil {
		return false, c.mapError(err, fmt.Sprintf("blocking %q", login))
	}
	return true, nil
}

// listAccounts runs one paginated user-listing call and converts the result
// to an AccountPage.
func (c *RESTClient) listAccounts(ctx context.Context, opts FetchOptions, what string, list func(*gogithub.ListOptions) ([]*gogithub.User, *gogithub.Response, error)) (*AccountPage, error) {
	lo, err := listOptions(opts)
	if err != nil {
		return nil, err
	}

	users, resp, err := list(lo)
	if err != nil {
		return nil, c.mapError(err, what)
	}

	page := &AccountPage{
		Accounts: make([]Account, 0, len(users)),
	}
	for _, user := range users {
		page.Accounts = append(page.Accounts, convertUser(user))
	}
	setNextCursor(&page.HasNextPage, &page.EndCursor, resp)

	return page, nil
}

// listOptions translates FetchOptions into go-github list options. The REST
// API paginates by page number; the number is carried in the opaque After
// cursor and never interpreted by callers.
func listOptions(opts FetchOptions) (*gogithub.ListOptions, error) {
	size := opts.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	lo := &gogithub.ListOptions{PerPage: size}
	if opts.After != "" {
		page, err := strconv.Atoi(opts.After)
		if err != nil || page <= 0 {
			return nil, fmt.Errorf("pagination cursor %q was not produced by this client: %w",
				opts.After, socialerrors.ErrMalformedInput)
		}
		lo.Page = page
	}
	return lo, nil
}

// setNextCursor records the continuation cursor parsed from the response's
// Link header. NextPage of zero means the terminal page.
func setNextCursor(hasNext *bool, cursor *string, resp *gogithub.Response) {
	if resp != nil && resp.NextPage != 0 {
		*hasNext = true
		*cursor = strconv.Itoa(resp.NextPage)
	}
}

// convertUser converts a go-github user to our domain model. Optional
// profile fields stay zero when the API omits them.
func convertUser(user *gogithub.User) Account {
	return Account{
		Login:           user.GetLogin(),
		ID:              user.GetID(),
		Name:            user.GetName(),
		CreatedAt:       user.GetCreatedAt().Time,
		TwitterUsername: user.GetTwitterUsername(),
	}
}

// mapError maps go-github errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error, what string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded while fetching %s. Please wait before retrying: %w", what, socialerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed while fetching %s. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", what, socialerrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("%s not found. Please check the name and your access permissions: %w", what, socialerrors.ErrNotFound)
	}

	if c.inspector.IsDecodeError(err) {
		return fmt.Errorf("GitHub returned an unreadable payload while fetching %s: %w", what, socialerrors.ErrDecodeFailure)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API while fetching %s. Please check your internet connection and try again: %w", what, socialerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("failed to fetch %s: %w", what, err)
}
