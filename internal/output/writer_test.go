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

package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterStreamsEachRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Write([]string{"alice", "1"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	// The first row must be visible before the second is written.
	if got := buf.String(); got != "alice,1\n" {
		t.Fatalf("after first write: %q", got)
	}

	if err := w.Write([]string{"bob", "2"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "alice,1\nbob,2\n" {
		t.Fatalf("after second write: %q", got)
	}
	if w.Count() != 2 {
		t.Errorf("Count() = %d, want 2", w.Count())
	}
}

func TestWriterQuotesSpecialFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Write([]string{"Doe, Alice", "1"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "\"Doe, Alice\",1\n" {
		t.Errorf("row = %q", got)
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	if err := w.Write([]string{"alice", "1"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "alice,1") {
		t.Errorf("file contents = %q", data)
	}
}

func TestFileWriterBadPath(t *testing.T) {
	if _, err := NewFileWriter(filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Fatal("creating a file in a missing directory must fail")
	}
}
