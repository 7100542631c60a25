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
	"testing"

	socialerrors "github.com/sirseerhq/sirseer-social/internal/errors"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "valid repository",
			input:     "golang/go",
			wantOwner: "golang",
			wantRepo:  "go",
		},
		{
			name:      "whitespace trimmed",
			input:     " golang / go ",
			wantOwner: "golang",
			wantRepo:  "go",
		},
		{
			name:    "missing slash",
			input:   "golang",
			wantErr: true,
		},
		{
			name:    "too many segments",
			input:   "golang/go/src",
			wantErr: true,
		},
		{
			name:    "empty owner",
			input:   "/go",
			wantErr: true,
		},
		{
			name:    "empty repo",
			input:   "golang/",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepository(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRepository(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, socialerrors.ErrInvalidRepoPath) {
					t.Errorf("error = %v, want ErrInvalidRepoPath", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRepository(%q) error = %v", tt.input, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("got %s/%s, want %s/%s", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"invalid token", socialerrors.ErrInvalidToken, 2},
		{"not found", socialerrors.ErrNotFound, 2},
		{"rate limit", socialerrors.ErrRateLimit, 2},
		{"invalid repo path", socialerrors.ErrInvalidRepoPath, 2},
		{"malformed input", socialerrors.ErrMalformedInput, 2},
		{"network failure", socialerrors.ErrNetworkFailure, 3},
		{"wrapped network failure", fmt.Errorf("fetch: %w", socialerrors.ErrNetworkFailure), 3},
		{"generic error", errors.New("something broke"), 1},
		{"decode failure", socialerrors.ErrDecodeFailure, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	if got := getToken("flag-token", "GITHUB_TOKEN"); got != "flag-token" {
		t.Errorf("flag token must win, got %q", got)
	}
	if got := getToken("", "GITHUB_TOKEN"); got != "env-token" {
		t.Errorf("env token expected, got %q", got)
	}
	if got := getToken("", "UNSET_TOKEN_VAR"); got != "" {
		t.Errorf("missing token must be empty, got %q", got)
	}
}
