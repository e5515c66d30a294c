package testutils

import "testing"

func TestFindOption(t *testing.T) {
	source := "# option:type: Post\n# option:skip: true\ntype Post { id: ID! }\n"

	if v := FindOptionString(t, "type", source); v != "Post" {
		t.Errorf("unexpected type option: %q", v)
	}
	if !FindOptionBool(t, "skip", source) {
		t.Error("skip option must be true")
	}
	if _, ok := FindOption(t, "missing", source); ok {
		t.Error("missing option must not be found")
	}
	if FindOptionBool(t, "missing", source) {
		t.Error("missing bool option must be false")
	}
}
