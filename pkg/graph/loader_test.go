package graph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
)

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestLoadEdgeList_PlainText(t *testing.T) {
	path := writeTestFile(t, "tiny.txt", []byte(
		"# two triangles joined at vertex 3\n"+
			"0 1\n0 2\n1 2\n2 3\n3 4\n3 5\n4 5\n"))

	g, err := LoadEdgeList(path)
	if err != nil {
		t.Fatalf("LoadEdgeList failed: %v", err)
	}

	if g.NumVertices() != 6 {
		t.Errorf("NumVertices = %d, want 6", g.NumVertices())
	}
	if g.NumEdges() != 7 {
		t.Errorf("NumEdges = %d, want 7", g.NumEdges())
	}
	if g.Degree(3) != 3 {
		t.Errorf("Degree(3) = %d, want 3", g.Degree(3))
	}
}

func TestLoadEdgeList_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeTestFile(t, "comments.txt", []byte(
		"% matrix-market style comment\n\n# hash comment\n0 1\n\n1 2\n"))

	g, err := LoadEdgeList(path)
	if err != nil {
		t.Fatalf("LoadEdgeList failed: %v", err)
	}
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges = %d, want 2", g.NumEdges())
	}
}

func TestLoadEdgeList_Snappy(t *testing.T) {
	raw := []byte("0 1\n0 2\n1 2\n")
	path := writeTestFile(t, "tri.txt.snappy", snappy.Encode(nil, raw))

	g, err := LoadEdgeList(path)
	if err != nil {
		t.Fatalf("LoadEdgeList failed: %v", err)
	}
	if g.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", g.NumEdges())
	}
}

func TestLoadEdgeList_MalformedLine(t *testing.T) {
	path := writeTestFile(t, "bad.txt", []byte("0 1\nnot-a-vertex 2\n"))

	_, err := LoadEdgeList(path)
	if !errors.Is(err, ErrBadEdgeList) {
		t.Fatalf("err = %v, want ErrBadEdgeList", err)
	}

	var gerr *GraphError
	if !errors.As(err, &gerr) {
		t.Fatal("err is not a *GraphError")
	}
	if gerr.Line != 2 {
		t.Errorf("error line = %d, want 2", gerr.Line)
	}
}

func TestLoadEdgeList_MissingFile(t *testing.T) {
	if _, err := LoadEdgeList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
