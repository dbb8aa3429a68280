package testdata_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/gox12/testdata"
)

func TestLoadMinimal270(t *testing.T) {
	data, err := testdata.LoadMinimal270()
	if err != nil {
		t.Fatalf("LoadMinimal270() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("ISA*")) {
		t.Errorf("data does not begin with ISA segment: %q", data[:20])
	}
	if !bytes.Contains(data, []byte("ST*270*")) {
		t.Error("expected an ST*270* transaction set header")
	}
	if !bytes.Contains(data, []byte("IEA*1*000000001")) {
		t.Error("expected IEA control number 000000001 matching ISA13")
	}
}

func TestLoadControlNumMismatch(t *testing.T) {
	data, err := testdata.LoadControlNumMismatch()
	if err != nil {
		t.Fatalf("LoadControlNumMismatch() error = %v", err)
	}
	if !bytes.Contains(data, []byte("000000001*0*P*:~")) {
		t.Error("expected ISA13 control number 000000001")
	}
	if !bytes.Contains(data, []byte("IEA*1*999999999")) {
		t.Error("expected IEA02 control number 999999999, deliberately disagreeing with ISA13")
	}
}

func TestLoadInvalidNPI837(t *testing.T) {
	data, err := testdata.LoadInvalidNPI837()
	if err != nil {
		t.Fatalf("LoadInvalidNPI837() error = %v", err)
	}
	if !bytes.Contains(data, []byte("NM1*85*2*BILLING PROVIDER*****XX*1234567890")) {
		t.Error("expected billing provider NPI 1234567890, which fails the Luhn check digit")
	}
}

func TestLoadNonDefaultDelims(t *testing.T) {
	data, err := testdata.LoadNonDefaultDelims()
	if err != nil {
		t.Fatalf("LoadNonDefaultDelims() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("ISA|")) {
		t.Errorf("expected '|' element separator, got %q", data[:20])
	}
	firstLine := bytes.SplitN(data, []byte("\n"), 2)[0]
	if bytes.ContainsRune(firstLine, '~') {
		t.Error("expected no '~' segment terminator in an interchange using '|'/newline delimiters")
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected multiple newline-terminated segments, got %d lines", len(lines))
	}
}

func TestLoadNestedLoops837P(t *testing.T) {
	data, err := testdata.LoadNestedLoops837P()
	if err != nil {
		t.Fatalf("LoadNestedLoops837P() error = %v", err)
	}
	if n := bytes.Count(data, []byte("CLM*")); n != 2 {
		t.Errorf("CLM count = %d, want 2 (one Loop 2300 per claim)", n)
	}
	if n := bytes.Count(data, []byte("LX*")); n != 3 {
		t.Errorf("LX count = %d, want 3 (one Loop 2400 per service line across both claims)", n)
	}
}

func TestLoadRoundTrip835(t *testing.T) {
	data, err := testdata.LoadRoundTrip835()
	if err != nil {
		t.Fatalf("LoadRoundTrip835() error = %v", err)
	}
	if !bytes.Contains(data, []byte("ST*835*")) {
		t.Error("expected an ST*835* transaction set header")
	}
	if !bytes.Contains(data, []byte("BPR*")) || !bytes.Contains(data, []byte("CLP*")) {
		t.Error("expected both a BPR payment header and a CLP claim payment segment")
	}
}

func TestLoadEmpty(t *testing.T) {
	data, err := testdata.LoadEmpty()
	if err != nil {
		t.Fatalf("LoadEmpty() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("len(data) = %d, want 0", len(data))
	}
}

func TestLoadTruncatedISA(t *testing.T) {
	data, err := testdata.LoadTruncatedISA()
	if err != nil {
		t.Fatalf("LoadTruncatedISA() error = %v", err)
	}
	if len(data) >= 106 {
		t.Errorf("len(data) = %d, want < 106 (shorter than a full ISA segment)", len(data))
	}
	if !bytes.HasPrefix(data, []byte("ISA*")) {
		t.Error("expected the truncated content to still begin with ISA")
	}
}

func TestLoadUnknownTransaction(t *testing.T) {
	data, err := testdata.LoadUnknownTransaction()
	if err != nil {
		t.Fatalf("LoadUnknownTransaction() error = %v", err)
	}
	if !bytes.Contains(data, []byte("ST*999*")) {
		t.Error("expected an ST*999* header naming an unregistered transaction type")
	}
}

func TestLoadFile(t *testing.T) {
	data, err := testdata.LoadFile(testdata.FileMinimal270)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestLoadFileNotFound(t *testing.T) {
	if _, err := testdata.LoadFile("does_not_exist.x12"); err == nil {
		t.Error("LoadFile() error = nil, want an error for a missing file")
	}
}

func TestMustLoad(t *testing.T) {
	data := testdata.MustLoad(testdata.FileMinimal270)
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestMustLoadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoad() did not panic for a missing file")
		}
	}()
	testdata.MustLoad("does_not_exist.x12")
}

func TestListFiles(t *testing.T) {
	files, err := testdata.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	want := []string{testdata.FileMinimal270, testdata.FileEmpty}
	for _, w := range want {
		found := false
		for _, f := range files {
			if f == w {
				found = true
			}
		}
		if !found {
			t.Errorf("ListFiles() missing %q", w)
		}
	}
}

func TestListMalformedFiles(t *testing.T) {
	files, err := testdata.ListMalformedFiles()
	if err != nil {
		t.Fatalf("ListMalformedFiles() error = %v", err)
	}
	if len(files) != 3 {
		t.Errorf("len(files) = %d, want 3", len(files))
	}
	for _, f := range files {
		if !strings.HasPrefix(f, "malformed/") {
			t.Errorf("file %q missing malformed/ prefix", f)
		}
	}
}

func TestListValidFiles(t *testing.T) {
	files, err := testdata.ListValidFiles()
	if err != nil {
		t.Fatalf("ListValidFiles() error = %v", err)
	}
	if len(files) != 6 {
		t.Errorf("len(files) = %d, want 6", len(files))
	}
	for _, f := range files {
		if strings.Contains(f, "/") {
			t.Errorf("file %q should not be under a subdirectory", f)
		}
	}
}
