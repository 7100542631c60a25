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

	"github.com/sirseerhq/sirseer-social/internal/social"
	"github.com/spf13/cobra"
)

func newCheckFollowCommand() *cobra.Command {
	var (
		flags    commonFlags
		follower string
		target   string
	)

	cmd := &cobra.Command{
		Use:   "check-follow --follower <login> [--user <login>]",
		Short: "Check whether one account follows another",
		Long: `Check whether one account follows another and print true or false.

The --follower account is the one doing the following. When --user is
omitted the target defaults to the authenticated user, which requires a
usable token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckFollow(cmd.Context(), &flags, follower, target)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&follower, "follower", "", "Login of the account doing the following (required)")
	cmd.Flags().StringVar(&target, "user", "", "Login of the account being followed (default: the authenticated user)")
	_ = cmd.MarkFlagRequired("follower")
	return cmd
}

// runCheckFollow executes the follow check command.
func runCheckFollow(ctx context.Context, flags *commonFlags, follower, target string) error {
	_, client, err := flags.setup()
	if err != nil {
		return err
	}

	follows, err := social.CheckFollow(ctx, client, follower, target)
	if err != nil {
		return err
	}

	fmt.Println(follows)
	return nil
}
