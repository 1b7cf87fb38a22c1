package vmh

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Line
	}{
		{
			name:  "marker and data",
			input: "@0000\nDEADBEEF \n",
			want: []Line{
				{Number: 1, Kind: KindAddress, Raw: "@0000\n"},
				{Number: 2, Kind: KindData, Raw: "DEADBEEF \n", Words: []string{"DEADBEEF"}},
			},
		},
		{
			name:  "several words",
			input: "00000013 00C0FFEE  12345678\n",
			want: []Line{
				{Number: 1, Kind: KindData, Raw: "00000013 00C0FFEE  12345678\n",
					Words: []string{"00000013", "00C0FFEE", "12345678"}},
			},
		},
		{
			name:  "no trailing newline",
			input: "@0000\nCAFEBABE",
			want: []Line{
				{Number: 1, Kind: KindAddress, Raw: "@0000\n"},
				{Number: 2, Kind: KindData, Raw: "CAFEBABE", Words: []string{"CAFEBABE"}},
			},
		},
		{
			name:  "crlf terminators",
			input: "@10\r\nAABBCCDD\r\n",
			want: []Line{
				{Number: 1, Kind: KindAddress, Raw: "@10\r\n"},
				{Number: 2, Kind: KindData, Raw: "AABBCCDD\r\n", Words: []string{"AABBCCDD"}},
			},
		},
		{
			name:  "comment and empty line",
			input: "// generated by elf2vmh\n\n@0\n",
			want: []Line{
				{Number: 1, Kind: KindComment, Raw: "// generated by elf2vmh\n"},
				{Number: 2, Kind: KindData, Raw: "\n", Words: []string{}},
				{Number: 3, Kind: KindAddress, Raw: "@0\n"},
			},
		},
		{
			name:  "trailing comment",
			input: "DEADBEEF // reset vector\n  // indented\n",
			want: []Line{
				{Number: 1, Kind: KindData, Raw: "DEADBEEF // reset vector\n", Words: []string{"DEADBEEF"}},
				{Number: 2, Kind: KindData, Raw: "  // indented\n", Words: []string{}},
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  []Line{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReader(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got.Lines) != len(tt.want) {
				t.Fatalf("Lines count = %d, want %d", len(got.Lines), len(tt.want))
			}

			for i, line := range got.Lines {
				want := tt.want[i]

				if line.Number != want.Number {
					t.Errorf("Line[%d].Number = %d, want %d", i, line.Number, want.Number)
				}
				if line.Kind != want.Kind {
					t.Errorf("Line[%d].Kind = %v, want %v", i, line.Kind, want.Kind)
				}
				if line.Raw != want.Raw {
					t.Errorf("Line[%d].Raw = %q, want %q", i, line.Raw, want.Raw)
				}
				if len(line.Words) != 0 || len(want.Words) != 0 {
					if !reflect.DeepEqual(line.Words, want.Words) {
						t.Errorf("Line[%d].Words = %q, want %q", i, line.Words, want.Words)
					}
				}
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestParseReader_ReadError(t *testing.T) {
	_, err := ParseReader(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "device gone") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gcd.vmh")
	if err := os.WriteFile(path, []byte("@0000\n00000013\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	f, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(f.Lines) != 2 {
		t.Errorf("Lines count = %d, want 2", len(f.Lines))
	}
}

func TestParse_NotFound(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.vmh"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLineKindString(t *testing.T) {
	if KindAddress.String() != "address" || KindData.String() != "data" || KindComment.String() != "comment" {
		t.Error("unexpected LineKind names")
	}
	if LineKind(42).String() != "unknown" {
		t.Errorf("LineKind(42) = %s", LineKind(42))
	}
}
