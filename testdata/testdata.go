// Package testdata provides embedded X12 test interchanges for testing
// the gox12 library.
package testdata

import (
	"embed"
	"fmt"
	"path"
)

//go:embed *.x12 malformed/*.x12
var FS embed.FS

// Interchange file names
const (
	FileMinimal270         = "minimal_270.x12"
	FileControlNumMismatch = "control_number_mismatch.x12"
	FileInvalidNPI837      = "invalid_npi_837.x12"
	FileNonDefaultDelims   = "non_default_delimiters.x12"
	FileNestedLoops837P    = "nested_loops_837p.x12"
	FileRoundTrip835       = "round_trip_835.x12"
	FileEmpty              = "malformed/empty.x12"
	FileTruncatedISA       = "malformed/truncated_isa.x12"
	FileUnknownTransaction = "malformed/unknown_transaction.x12"
)

// LoadMinimal270 loads a single-group, single-transaction 270
// eligibility inquiry interchange with a matching GS08/ST03
// implementation convention and all three HL loops populated.
func LoadMinimal270() ([]byte, error) {
	return FS.ReadFile(FileMinimal270)
}

// LoadControlNumMismatch loads a 270 interchange whose IEA02 control
// number disagrees with ISA13, for exercising interchange-integrity
// failures.
func LoadControlNumMismatch() ([]byte, error) {
	return FS.ReadFile(FileControlNumMismatch)
}

// LoadInvalidNPI837 loads an 837 professional claim whose billing
// provider NM1 carries a Luhn-invalid NPI, for exercising codeset
// validation failures.
func LoadInvalidNPI837() ([]byte, error) {
	return FS.ReadFile(FileInvalidNPI837)
}

// LoadNonDefaultDelims loads a 270 interchange using '|' as the
// element separator and a newline as the segment terminator instead
// of the package defaults, for exercising delimiter detection.
func LoadNonDefaultDelims() ([]byte, error) {
	return FS.ReadFile(FileNonDefaultDelims)
}

// LoadNestedLoops837P loads an 837 professional claim with two
// repeated Loop 2300 claims, one of which itself repeats Loop 2400,
// for exercising nested-loop assembly.
func LoadNestedLoops837P() ([]byte, error) {
	return FS.ReadFile(FileNestedLoops837P)
}

// LoadRoundTrip835 loads a complete 835 remittance advice interchange
// suitable for parse-then-generate round-trip comparison.
func LoadRoundTrip835() ([]byte, error) {
	return FS.ReadFile(FileRoundTrip835)
}

// LoadEmpty loads an empty file for testing empty input handling.
func LoadEmpty() ([]byte, error) {
	return FS.ReadFile(FileEmpty)
}

// LoadTruncatedISA loads an ISA segment cut short before the 106-byte
// fixed-width minimum, for exercising delimiter-detection errors.
func LoadTruncatedISA() ([]byte, error) {
	return FS.ReadFile(FileTruncatedISA)
}

// LoadUnknownTransaction loads an interchange whose ST01 names a
// transaction type with no registered schema.
func LoadUnknownTransaction() ([]byte, error) {
	return FS.ReadFile(FileUnknownTransaction)
}

// LoadFile loads any test file by name from the embedded filesystem.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("loading test file %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads a test file and panics on error.
// Useful for test setup where failure should halt the test.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// ListFiles returns a list of all embedded test file names.
func ListFiles() ([]string, error) {
	var files []string

	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			subEntries, err := FS.ReadDir(entry.Name())
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", entry.Name(), err)
			}
			for _, subEntry := range subEntries {
				if !subEntry.IsDir() {
					files = append(files, path.Join(entry.Name(), subEntry.Name()))
				}
			}
		} else {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// ListMalformedFiles returns a list of malformed/boundary test file names.
func ListMalformedFiles() ([]string, error) {
	entries, err := FS.ReadDir("malformed")
	if err != nil {
		return nil, fmt.Errorf("reading malformed directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, path.Join("malformed", entry.Name()))
		}
	}

	return files, nil
}

// ListValidFiles returns a list of valid (non-malformed) test file names.
func ListValidFiles() ([]string, error) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
