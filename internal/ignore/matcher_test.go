package ignore

import "testing"

func TestMatcher_DefaultAndUserOverrides(t *testing.T) {
	m := NewMatcher([]string{
		"legacy/**",
		"!legacy/keep/urls.py",
		"*.bak",
	})

	cases := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{path: ".git/config", isDir: false, ignored: true},
		{path: ".venv/lib/python3.12/site-packages/django/contrib/admin/urls.py", isDir: false, ignored: true},
		{path: "venv", isDir: true, ignored: true},
		{path: "blog/__pycache__", isDir: true, ignored: true},
		{path: "node_modules/pkg/index.js", isDir: false, ignored: true},
		{path: "legacy/old/urls.py", isDir: false, ignored: true},
		{path: "legacy/keep/urls.py", isDir: false, ignored: false},
		{path: "blog/urls.py.bak", isDir: false, ignored: true},
		{path: "blog/urls.py", isDir: false, ignored: false},
		{path: "environment/urls.py", isDir: false, ignored: false},
		{path: ".", isDir: true, ignored: false},
	}

	for _, tc := range cases {
		got := m.ShouldIgnore(tc.path, tc.isDir)
		if got != tc.ignored {
			t.Fatalf("path %s: expected ignored=%v, got %v", tc.path, tc.ignored, got)
		}
	}
}

func TestMatcher_NegatedDirectoryRule(t *testing.T) {
	m := NewMatcher([]string{
		"apps/",
		"!apps/blog/",
	})

	if !m.ShouldIgnore("apps/shop/urls.py", false) {
		t.Fatalf("expected apps/shop/urls.py to be ignored")
	}
	if m.ShouldIgnore("apps/blog/urls.py", false) {
		t.Fatalf("expected apps/blog/urls.py to be included")
	}
}

func TestMatcher_AnchoredRule(t *testing.T) {
	m := NewMatcher([]string{"/docs/"})

	if !m.ShouldIgnore("docs/urls.py", false) {
		t.Fatalf("expected root docs/ to be ignored")
	}
	if m.ShouldIgnore("blog/docs/urls.py", false) {
		t.Fatalf("expected nested docs/ to be kept for an anchored rule")
	}
}
