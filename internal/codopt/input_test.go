package codopt

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_inputParser_protein(t *testing.T) {
	dir := t.TempDir()

	write := func(name, contents string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	fasta := write("target.fasta", ">insulin fragment\nMKT\nWLS\n")
	plain := write("target.txt", "mktwls\n")
	multi := write("multi.fasta", ">one\nMKT\n>two\nWLS\n")
	empty := write("empty.fasta", ">one\n")

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			"literal sequence",
			"MKTWLS",
			"MKTWLS",
			false,
		},
		{
			"literal lowercase",
			"mktwls",
			"MKTWLS",
			false,
		},
		{
			"fasta file",
			fasta,
			"MKTWLS",
			false,
		},
		{
			"plain text file",
			plain,
			"MKTWLS",
			false,
		},
		{
			"multi record fasta",
			multi,
			"",
			true,
		},
		{
			"record without a sequence",
			empty,
			"",
			true,
		},
	}

	p := inputParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.protein(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("protein() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("protein() = %q, want %q", got, tt.want)
			}
		})
	}
}
