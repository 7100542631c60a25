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
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirseerhq/sirseer-social/internal/social"
	"github.com/spf13/cobra"
)

func newBlockUsersCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "block-users",
		Short: "Block the accounts listed on standard input",
		Long: `Block the accounts listed on standard input, one CSV row per account.

The first field of each row is the login to block; additional fields are
ignored. Rows that cannot be parsed are skipped with a warning. A failure
on one account never stops the rest of the batch.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set the configured token environment variable (default GITHUB_TOKEN)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlockUsers(cmd.Context(), &flags, cmd.InOrStdin())
		},
	}

	flags.register(cmd)
	return cmd
}

// runBlockUsers reads the batch from input and attempts every login in it.
func runBlockUsers(ctx context.Context, flags *commonFlags, input io.Reader) error {
	logins, err := readLogins(input)
	if err != nil {
		return err
	}
	if len(logins) == 0 {
		fmt.Fprintln(os.Stderr, "No accounts to block")
		return nil
	}

	_, client, err := flags.setup()
	if err != nil {
		return err
	}

	return social.BlockAll(ctx, client, logins, func(r social.BlockResult) {
		switch {
		case r.Err != nil:
			fmt.Fprintf(os.Stderr, "Failed to block %s: %v\n", r.Login, r.Err)
		case r.Changed:
			fmt.Fprintf(os.Stderr, "Blocked %s\n", r.Login)
		default:
			fmt.Fprintf(os.Stderr, "%s was already blocked\n", r.Login)
		}
	})
}

// readLogins parses the batch input. The first field of every row is the
// login; rows with an empty first field are skipped with a warning rather
// than failing the batch. Each line is parsed independently so a malformed
// row (for example an unterminated quote) cannot consume the rows after it.
func readLogins(input io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(input)

	var logins []string
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		reader := csv.NewReader(strings.NewReader(text))
		reader.FieldsPerRecord = -1 // rows may carry any number of extra fields
		reader.TrimLeadingSpace = true

		record, err := reader.Read()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping malformed input row %d: %v\n", line, err)
			continue
		}

		login := strings.TrimSpace(record[0])
		if login == "" {
			fmt.Fprintf(os.Stderr, "Warning: skipping input row %d with empty login\n", line)
			continue
		}
		logins = append(logins, login)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	return logins, nil
}
