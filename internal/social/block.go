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
	"fmt"

	"github.com/sirseerhq/sirseer-social/internal/github"
)

// BlockResult reports the outcome of blocking one account.
type BlockResult struct {
	Login string
	// Changed is true when the account transitioned from unblocked to
	// blocked; false when it was already blocked.
	Changed bool
	Err     error
}

// BlockAll blocks each login in order, invoking report after every attempt.
// A failure on one account never aborts the rest of the batch: all logins
// are attempted regardless. If any attempt failed, BlockAll returns an error
// wrapping the last failure so the caller's exit status reflects the worst
// outcome observed.
func BlockAll(ctx context.Context, client github.Client, logins []string, report func(BlockResult)) error {
	var (
		failures int
		lastErr  error
	)

	for _, login := range logins {
		changed, err := client.BlockAccount(ctx, login)
		if err != nil {
			failures++
			lastErr = err
		}
		if report != nil {
			report(BlockResult{Login: login, Changed: changed, Err: err})
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to block %d of %d accounts: %w", failures, len(logins), lastErr)
	}
	return nil
}
