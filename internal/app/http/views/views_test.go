package views

import "testing"

func TestTemplates(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{"home.html", "member-list.html", "create-member-form.html", "error.html"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %q not loaded", name)
		}
	}
}
