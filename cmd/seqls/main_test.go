package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runSeqls(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExpand(t *testing.T) {
	out, err := runSeqls(t, "expand", "file.1-3#.exr")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := "file.1.exr\nfile.2.exr\nfile.3.exr\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExpandLoose(t *testing.T) {
	out, err := runSeqls(t, "expand", "--loose", "1-2#_plate.exr")
	if err != nil {
		t.Fatalf("expand --loose: %v", err)
	}
	if want := "1_plate.exr\n2_plate.exr\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExpandPattern(t *testing.T) {
	_, err := runSeqls(t, "expand", "file.####.exr")
	if err == nil {
		t.Fatal("expected an error for a sequence without file numbers")
	}
}

func TestExpandParseError(t *testing.T) {
	_, err := runSeqls(t, "expand", "file.exr")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "No range string is present") {
		t.Errorf("error = %q", err)
	}
}

func TestExpandExisting(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plate.0001.exr", "plate.0003.exr"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, err := runSeqls(t, "expand", "--existing", dir+"/plate.####.exr")
	if err != nil {
		t.Fatalf("expand --existing: %v", err)
	}
	want := dir + "/plate.0001.exr\n" + dir + "/plate.0003.exr\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestInfo(t *testing.T) {
	out, err := runSeqls(t, "info", "shots/file.1-10x2#.exr")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"stem:       file", "ranges:     1-9x2", "files:      5", "suffixes:   .exr"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGlobCommand(t *testing.T) {
	out, err := runSeqls(t, "glob", "shots/file.1-10####.exr")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if want := "shots/file.*.exr\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRegexCommand(t *testing.T) {
	out, err := runSeqls(t, "regex", "file.1-10#.exr")
	if err != nil {
		t.Fatalf("regex: %v", err)
	}
	if !strings.Contains(out, "range0") {
		t.Errorf("output = %q", out)
	}
}
