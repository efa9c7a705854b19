package reference

import (
	"reflect"
	"testing"

	"github.com/morozRed/routejump/internal/route"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		line string
		want route.QualifiedName
		ok   bool
	}{
		{line: `<a href="{% url 'app:sub:leaf' %}">x</a>`, want: route.QualifiedName{"app", "sub", "leaf"}, ok: true},
		{line: `   {% url 'leaf' post.pk slug=post.slug %}   `, want: route.QualifiedName{"leaf"}, ok: true},
		{line: `{% url 'blog:post_detail' pk=1 %}`, want: route.QualifiedName{"blog", "post_detail"}, ok: true},
		{line: `{% url '' %}`, want: route.QualifiedName{""}, ok: true},
		{line: `{% url "blog:post_detail" %}`, ok: false},
		{line: `{% static 'css/site.css' %}`, ok: false},
		{line: `{% url 'blog:post_detail'%}`, ok: false},
		{line: `plain text`, ok: false},
		{line: ``, ok: false},
	}

	for _, tc := range cases {
		got, ok := Extract(tc.line)
		if ok != tc.ok {
			t.Fatalf("Extract(%q): expected ok=%v, got %v", tc.line, tc.ok, ok)
		}
		if ok && !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Extract(%q): expected %v, got %v", tc.line, tc.want, got)
		}
	}
}

func TestExtractAt(t *testing.T) {
	content := []byte("{% extends 'base.html' %}\r\n<a href=\"{% url 'blog:post_list' %}\">all</a>\n")

	name, ok, err := ExtractAt(content, 2)
	if err != nil {
		t.Fatalf("ExtractAt failed: %v", err)
	}
	if !ok || name.String() != "blog:post_list" {
		t.Fatalf("expected blog:post_list, got %v (ok=%v)", name, ok)
	}

	if _, ok, err := ExtractAt(content, 1); err != nil || ok {
		t.Fatalf("expected no reference on line 1, got ok=%v err=%v", ok, err)
	}
	if _, _, err := ExtractAt(content, 9); err == nil {
		t.Fatalf("expected out of range error")
	}
	if _, _, err := ExtractAt(content, 0); err == nil {
		t.Fatalf("expected error for line 0")
	}
}
