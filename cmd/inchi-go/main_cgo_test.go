//go:build cgo

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	code, stdout, stderr := runCLI(t, "key", "-xtra1", "InChI=1S/CH4/h1H4")
	if code != exitOK {
		t.Fatalf("key exit %d: %s", code, stderr)
	}
	fields := strings.Split(strings.TrimSpace(stdout), "\t")
	if len(fields) != 2 || fields[0] != "VNWKTOKETHGBQD-UHFFFAOYSA-N" || fields[1] == "" {
		t.Fatalf("unexpected key output %q", stdout)
	}

	code, _, _ = runCLI(t, "key", "notAnInChI")
	if code != exitFailure {
		t.Fatalf("invalid InChI exit %d", code)
	}
}

func TestConvertAndParse(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	doc := "atoms:\n  - element: C\n  - element: C\n  - element: O\nbonds:\n  - {begin: 0, end: 1, order: single}\n  - {begin: 1, end: 2, order: single}\n"
	if err := os.WriteFile(filepath.Join(dir, "ethanol.yaml"), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "inchi.yaml"), []byte("cache:\n  path: cache.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		code, stdout, stderr := runCLI(t, "-config", "inchi.yaml", "convert", "-format", "json", "ethanol.yaml")
		if code != exitOK {
			t.Fatalf("convert exit %d: %s", code, stderr)
		}
		var rows []conversion
		if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		if len(rows) != 1 || rows[0].InChI != "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3" || rows[0].Formula != "C2H6O" {
			t.Fatalf("unexpected rows %+v", rows)
		}
	}

	code, stdout, stderr := runCLI(t, "parse", "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3")
	if code != exitOK {
		t.Fatalf("parse exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "element: O") {
		t.Fatalf("parse output %q", stdout)
	}

	code, stdout, _ = runCLI(t, "convert", "ethanol.yaml")
	if code != exitOK || !strings.Contains(stdout, "LFQSCWFLJHTTHZ-UHFFFAOYSA-N") {
		t.Fatalf("table output (exit %d): %q", code, stdout)
	}
}
