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

// Package output provides utilities for writing result rows as CSV.
// Each row is flushed as soon as it is written, so listing commands can
// stream records to stdout as the backing record stream yields them instead
// of accumulating results in memory.
//
// The primary type is Writer, which provides thread-safe writing of CSV
// records to an io.Writer or file.
//
// Example usage:
//
//	// Write to a file
//	w, err := output.NewFileWriter("contributors.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	// Write rows
//	for _, row := range rows {
//	    if err := w.Write(row); err != nil {
//	        log.Printf("Failed to write row: %v", err)
//	    }
//	}
//
//	fmt.Printf("Wrote %d rows\n", w.Count())
package output
