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

// Package social implements the social-graph queries of sirseer-social:
// account streams for followers, following and blocked accounts, batch
// profile lookup, pairwise follow checks, and bulk blocking. Each listing is
// the same record-stream shape over a different endpoint of the underlying
// client.
package social

import (
	"context"
	"errors"

	socialerrors "github.com/sirseerhq/sirseer-social/internal/errors"
	"github.com/sirseerhq/sirseer-social/internal/github"
	"github.com/sirseerhq/sirseer-social/internal/stream"
)

// Followers returns a stream of the accounts that follow the authenticated
// user, in the API's discovery order.
func Followers(client github.Client, pageSize int) *stream.Stream[github.Account] {
	return accountStream(pageSize, client.FetchFollowerPage)
}

// Following returns a stream of the accounts the authenticated user follows.
func Following(client github.Client, pageSize int) *stream.Stream[github.Account] {
	return accountStream(pageSize, client.FetchFollowingPage)
}

// Blocked returns a stream of the accounts the authenticated user has blocked.
func Blocked(client github.Client, pageSize int) *stream.Stream[github.Account] {
	return accountStream(pageSize, client.FetchBlockedPage)
}

func accountStream(pageSize int, fetch func(context.Context, github.FetchOptions) (*github.AccountPage, error)) *stream.Stream[github.Account] {
	return stream.New(func(ctx context.Context, after string) ([]github.Account, stream.PageInfo, error) {
		page, err := fetch(ctx, github.FetchOptions{PageSize: pageSize, After: after})
		if err != nil {
			return nil, stream.PageInfo{}, err
		}
		return page.Accounts, stream.PageInfo{
			HasNextPage: page.HasNextPage,
			EndCursor:   page.EndCursor,
		}, nil
	})
}

// UserInfo batch-fetches full profiles for the given logins, one request per
// login. Duplicate logins are fetched once. Unknown logins (deleted accounts,
// bots without profiles) are simply absent from the result; any other failure
// aborts the batch.
func UserInfo(ctx context.Context, client github.Client, logins []string) (map[string]github.Account, error) {
	info := make(map[string]github.Account, len(logins))
	seen := make(map[string]struct{}, len(logins))

	for _, login := range logins {
		if _, ok := seen[login]; ok {
			continue
		}
		seen[login] = struct{}{}

		account, err := client.GetAccount(ctx, login)
		if err != nil {
			if errors.Is(err, socialerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		info[account.Login] = *account
	}

	return info, nil
}

// CheckFollow reports whether follower follows target. An empty target
// resolves to the authenticated user's login. The check is delegated to the
// remote relationship endpoint as-is; identical follower and target are not
// special-cased.
func CheckFollow(ctx context.Context, client github.Client, follower, target string) (bool, error) {
	if target == "" {
		login, err := client.AuthenticatedLogin(ctx)
		if err != nil {
			return false, err
		}
		target = login
	}
	return client.CheckFollows(ctx, follower, target)
}
