package route

import (
	"path/filepath"
	"testing"
)

const blogURLs = `from django.urls import path

from . import views

app_name = 'blog'

urlpatterns = [
    path('', views.post_list, name='post_list'),
    path('<int:pk>/', views.post_detail, name='post_detail'),
]
`

func TestParseName(t *testing.T) {
	cases := []struct {
		raw   string
		want  QualifiedName
		valid bool
	}{
		{raw: "leaf", want: QualifiedName{"leaf"}, valid: true},
		{raw: "app:sub:leaf", want: QualifiedName{"app", "sub", "leaf"}, valid: true},
		{raw: "", want: QualifiedName{""}, valid: false},
		{raw: "blog::detail", want: QualifiedName{"blog", "", "detail"}, valid: false},
	}

	for _, tc := range cases {
		got := ParseName(tc.raw)
		if len(got) != len(tc.want) {
			t.Fatalf("ParseName(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("ParseName(%q): expected %v, got %v", tc.raw, tc.want, got)
			}
		}
		if got.Valid() != tc.valid {
			t.Fatalf("ParseName(%q).Valid(): expected %v", tc.raw, tc.valid)
		}
		if got.String() != tc.raw {
			t.Fatalf("expected String() to round-trip %q, got %q", tc.raw, got.String())
		}
	}

	name := ParseName("app:sub:leaf")
	if name.Leaf() != "leaf" {
		t.Fatalf("expected leaf, got %q", name.Leaf())
	}
	if ns := name.Namespaces(); len(ns) != 2 || ns[0] != "app" || ns[1] != "sub" {
		t.Fatalf("expected [app sub] namespaces, got %v", ns)
	}
	if ParseName("leaf").Namespaces() != nil {
		t.Fatalf("expected single-segment name to have no namespaces")
	}
}

func TestResolve_PrefersFirstAcceptedInOrder(t *testing.T) {
	first := CandidateFile{
		Path:    filepath.Join("project", "shop", "urls.py"),
		Content: "app_name = 'shop'\nurlpatterns = [path('', views.cart, name='cart')]\n",
	}
	second := CandidateFile{Path: filepath.Join("project", "blog", "urls.py"), Content: blogURLs}
	third := CandidateFile{Path: filepath.Join("project", "legacy", "blog", "urls.py"), Content: blogURLs}

	result := Resolve(ParseName("blog:post_detail"), []CandidateFile{first, second, third})
	if !result.Found {
		t.Fatalf("expected blog:post_detail to resolve")
	}
	if result.File.Path != second.Path {
		t.Fatalf("expected first accepted candidate %s, got %s", second.Path, result.File.Path)
	}
	if result.LineIndex != 8 {
		t.Fatalf("expected line index 8, got %d (%q)", result.LineIndex, result.LineText)
	}

	// Reversing the order must flip the winner: enumeration order decides,
	// never completion order.
	result = Resolve(ParseName("blog:post_detail"), []CandidateFile{third, second, first})
	if result.File.Path != third.Path {
		t.Fatalf("expected %s after reordering, got %s", third.Path, result.File.Path)
	}
}

func TestResolve_NamespaceRequiresDeclarationOrDirectory(t *testing.T) {
	noNamespace := CandidateFile{
		Path:    filepath.Join("project", "posts", "urls.py"),
		Content: "urlpatterns = [path('<int:pk>/', views.post_detail, name='post_detail')]\n",
	}
	if result := Resolve(ParseName("blog:post_detail"), []CandidateFile{noNamespace}); result.Found {
		t.Fatalf("expected NotFound without app_name or directory hint, got %+v", result)
	}

	byDirectory := CandidateFile{
		Path:    filepath.Join("project", "shop-app", "urls.py"),
		Content: "urlpatterns = [\n    path('cart/', views.cart, name='cart'),\n]\n",
	}
	result := Resolve(ParseName("shop_app:cart"), []CandidateFile{noNamespace, byDirectory})
	if !result.Found || result.File.Path != byDirectory.Path {
		t.Fatalf("expected directory hint to satisfy namespace, got %+v", result)
	}
	if result.LineIndex != 1 {
		t.Fatalf("expected line index 1, got %d", result.LineIndex)
	}
}

func TestResolve_LeafNeedsNamedRoute(t *testing.T) {
	onlyNamespace := CandidateFile{
		Path:    filepath.Join("project", "blog", "urls.py"),
		Content: "app_name = 'post_detail'\nurlpatterns = [path('', views.post_detail)]\n",
	}
	if result := Resolve(ParseName("post_detail"), []CandidateFile{onlyNamespace}); result.Found {
		t.Fatalf("expected app_name alone not to satisfy the leaf, got %+v", result)
	}
}

func TestResolve_InvalidNamesAndEmptyInput(t *testing.T) {
	candidate := CandidateFile{Path: "blog/urls.py", Content: blogURLs}
	for _, raw := range []string{"", "blog:", ":post_detail"} {
		if result := Resolve(ParseName(raw), []CandidateFile{candidate}); result.Found {
			t.Fatalf("expected NotFound for %q", raw)
		}
	}
	if result := Resolve(ParseName("post_list"), nil); result.Found {
		t.Fatalf("expected NotFound with no candidates")
	}
}

func TestResolve_DoubleQuotedDeclarations(t *testing.T) {
	candidate := CandidateFile{
		Path:    filepath.Join("project", "accounts", "urls.py"),
		Content: "app_name = \"users\"\nurlpatterns = [\n    path(\"login/\", views.login, name=\"login\"),\n]\n",
	}
	result := Resolve(ParseName("users:login"), []CandidateFile{candidate})
	if !result.Found || result.LineIndex != 2 {
		t.Fatalf("expected double-quoted declaration on line index 2, got %+v", result)
	}
}

func TestResolve_SkipsAcceptedFileWithoutLocatableLine(t *testing.T) {
	// The declaration token spans a line break: the file is accepted as a
	// whole but no single line carries it.
	name := QualifiedName{"blog", "post\ndetail"}
	broken := CandidateFile{Path: "a/blog/urls.py", Content: "app_name = 'blog'\nx = \"name='post\ndetail'\"\n"}
	good := CandidateFile{Path: "b/blog/urls.py", Content: "app_name = 'blog'\nprint(\"name='post\"\n\"detail'\")\n"}

	if !Accepts(name, broken) {
		t.Fatalf("expected file-level acceptance for %s", broken.Path)
	}
	if result := Resolve(name, []CandidateFile{broken, good}); result.Found {
		t.Fatalf("expected NotFound when no line can be located, got %+v", result)
	}
}

func TestResolve_DirectoryHintStopsAtProjectRoot(t *testing.T) {
	// Candidate paths are relative to the project root, so the root's own
	// directory name is never part of the hint.
	rootLevel := CandidateFile{
		Path:    "urls.py",
		Content: "urlpatterns = [path('', views.index, name='index')]\n",
	}
	if rootLevel.Dir() != "." {
		t.Fatalf("expected root-level Dir to be \".\", got %q", rootLevel.Dir())
	}
	if result := Resolve(ParseName("blog:index"), []CandidateFile{rootLevel}); result.Found {
		t.Fatalf("expected NotFound for a root-level file without app_name, got %+v", result)
	}

	rootLevel.Content = "app_name = 'blog'\n" + rootLevel.Content
	if result := Resolve(ParseName("blog:index"), []CandidateFile{rootLevel}); !result.Found || result.LineIndex != 1 {
		t.Fatalf("expected app_name to satisfy the namespace at the root, got %+v", result)
	}
}
