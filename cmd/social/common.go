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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirseerhq/sirseer-social/internal/config"
	socialerrors "github.com/sirseerhq/sirseer-social/internal/errors"
	"github.com/sirseerhq/sirseer-social/internal/github"
	"github.com/sirseerhq/sirseer-social/internal/output"
	"github.com/spf13/cobra"
)

// commonFlags holds the flags shared by every subcommand.
type commonFlags struct {
	token      string
	configPath string
	outputFile string
	pageSize   int
}

// register binds the flags every subcommand takes.
func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "GitHub personal access token (overrides the configured token env var)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config file (default: standard locations)")
}

// registerPaged additionally binds the flags of commands that page through
// listings and write result rows. Commands that neither paginate nor emit
// rows (check-follow, block-users) must not advertise these.
func (f *commonFlags) registerPaged(cmd *cobra.Command) {
	f.register(cmd)
	cmd.Flags().StringVar(&f.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "Results per API page, 1-100 (default: from config)")
}

// setup loads configuration and builds the GitHub client from the shared
// flags. The flag values take precedence over config file and environment.
func (f *commonFlags) setup() (*config.Config, github.Client, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.pageSize != 0 {
		cfg.Defaults.PageSize = f.pageSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client, err := github.NewRESTClient(getToken(f.token, cfg.GitHub.TokenEnv), cfg.GitHub.APIEndpoint)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// newRowWriter creates the CSV writer for a command, honoring --output.
func (f *commonFlags) newRowWriter() (output.RowWriter, error) {
	if f.outputFile == "" {
		return output.NewWriter(os.Stdout), nil
	}
	return output.NewFileWriter(f.outputFile)
}

// getToken returns the GitHub token from the flag or the configured
// environment variable.
func getToken(flagToken, tokenEnv string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv(tokenEnv)
}

// parseRepository parses an owner/repo string into its components. The
// check runs before any network call so a bad path fails fast.
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got %q: %w",
			repoArg, socialerrors.ErrInvalidRepoPath)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got %q: %w",
			repoArg, socialerrors.ErrInvalidRepoPath)
	}

	return owner, repo, nil
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, socialerrors.ErrInvalidToken) ||
		errors.Is(err, socialerrors.ErrNotFound) ||
		errors.Is(err, socialerrors.ErrRateLimit) ||
		errors.Is(err, socialerrors.ErrInvalidRepoPath) ||
		errors.Is(err, socialerrors.ErrMalformedInput) {
		return 2 // Authentication/authorization/input errors
	}

	if errors.Is(err, socialerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
