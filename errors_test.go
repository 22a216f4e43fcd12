package atlasshift_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	atlasshift "github.com/reoring/atlasshift"
)

// TestIssues_ErrorSummary checks that only the first three issues are spelled
// out and the total is reported.
func TestIssues_ErrorSummary(t *testing.T) {
	var iss atlasshift.Issues
	for i := 0; i < 5; i++ {
		iss = atlasshift.AppendIssues(iss, atlasshift.Root().Field("frames").Index(i).Issue(atlasshift.CodeRequired, "missing"))
	}
	got := iss.Error()
	if !strings.HasPrefix(got, "required at /frames/0; required at /frames/1; required at /frames/2") {
		t.Fatalf("unexpected summary: %s", got)
	}
	if !strings.HasSuffix(got, "... (total 5)") {
		t.Fatalf("expected total suffix, got: %s", got)
	}
	if (atlasshift.Issues{}).Error() != "" {
		t.Fatalf("empty Issues should render empty")
	}
}

func TestAsIssues(t *testing.T) {
	if _, ok := atlasshift.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
	if _, ok := atlasshift.AsIssues(errors.New("x")); ok {
		t.Fatalf("plain error must not yield issues")
	}
	want := atlasshift.AppendIssues(nil, atlasshift.Root().Issue(atlasshift.CodeParseError, "bad"))
	err := &atlasshift.Error{Kind: atlasshift.KindMalformedInput, Issues: want}
	got, ok := atlasshift.AsIssues(err)
	if !ok || len(got) != 1 || got[0].Path != "/" {
		t.Fatalf("expected issues through *Error, got %v", got)
	}
}

func TestError_IsAndKindOf(t *testing.T) {
	cases := []struct {
		kind     atlasshift.Kind
		sentinel error
	}{
		{atlasshift.KindFileNotFound, atlasshift.ErrFileNotFound},
		{atlasshift.KindMalformedInput, atlasshift.ErrMalformedInput},
		{atlasshift.KindSchemaViolation, atlasshift.ErrSchemaViolation},
		{atlasshift.KindWriteFailure, atlasshift.ErrWriteFailure},
	}
	for _, tc := range cases {
		err := error(&atlasshift.Error{Kind: tc.kind, Path: "in.json"})
		if !errors.Is(err, tc.sentinel) {
			t.Fatalf("%v: expected errors.Is to match its sentinel", tc.kind)
		}
		for _, other := range cases {
			if other.kind != tc.kind && errors.Is(err, other.sentinel) {
				t.Fatalf("%v: must not match %v", tc.kind, other.sentinel)
			}
		}
		if got := atlasshift.KindOf(err); got != tc.kind {
			t.Fatalf("KindOf = %v, want %v", got, tc.kind)
		}
	}
	if atlasshift.KindOf(errors.New("x")) != atlasshift.KindUnknown {
		t.Fatalf("plain errors have no kind")
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	err := &atlasshift.Error{Kind: atlasshift.KindFileNotFound, Path: "in.json", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause in chain")
	}
	if !strings.HasPrefix(err.Error(), "file not found in.json: ") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestPathRef(t *testing.T) {
	if p := atlasshift.Root().Pointer(); p != "/" {
		t.Fatalf("root pointer = %q", p)
	}
	base := atlasshift.Root().Field("frames")
	a := base.Index(0).Field("a/b")
	b := base.Index(1).Field("c~d")
	if a.Pointer() != "/frames/0/a~1b" {
		t.Fatalf("unexpected pointer: %s", a)
	}
	if b.Pointer() != "/frames/1/c~0d" {
		t.Fatalf("unexpected pointer: %s", b)
	}
	iss := a.Issue(atlasshift.CodeInvalidType, "bad", "expected", "number", "got", "string")
	if iss.Offset != -1 || iss.Params["expected"] != "number" || iss.Params["got"] != "string" {
		t.Fatalf("unexpected issue: %+v", iss)
	}
}
