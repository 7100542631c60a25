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

package social

import (
	"context"

	"github.com/sirseerhq/sirseer-social/internal/github"
)

// Relationships holds both directions of the authenticated user's follow
// graph as login sets. It is built once per enrichment pass and discarded
// afterward; it is a point-in-time snapshot with no consistency guarantee if
// the remote graph mutates mid-traversal.
type Relationships struct {
	followers map[string]struct{}
	following map[string]struct{}
}

// BuildRelationships drains the follower and following streams into a
// Relationships snapshot. Requires authentication.
func BuildRelationships(ctx context.Context, client github.Client, pageSize int) (*Relationships, error) {
	r := &Relationships{
		followers: make(map[string]struct{}),
		following: make(map[string]struct{}),
	}

	if err := Followers(client, pageSize).ForEach(ctx, func(a github.Account) error {
		r.followers[a.Login] = struct{}{}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := Following(client, pageSize).ForEach(ctx, func(a github.Account) error {
		r.following[a.Login] = struct{}{}
		return nil
	}); err != nil {
		return nil, err
	}

	return r, nil
}

// FollowedBy reports whether the given login follows the authenticated user.
func (r *Relationships) FollowedBy(login string) bool {
	_, ok := r.followers[login]
	return ok
}

// Follows reports whether the authenticated user follows the given login.
func (r *Relationships) Follows(login string) bool {
	_, ok := r.following[login]
	return ok
}
