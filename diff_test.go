package secdiff

import "testing"

type roundTripTest struct {
	name string
	old  string
	new  string
}

var roundTripTests = []roundTripTest{
	{
		name: "insert word",
		old:  "Hello, world!",
		new:  "Hello, beautiful world!",
	},
	{
		name: "both empty",
		old:  "",
		new:  "",
	},
	{
		name: "identical",
		old:  "nothing changes here",
		new:  "nothing changes here",
	},
	{
		name: "from empty",
		old:  "",
		new:  "an entirely new section",
	},
	{
		name: "to empty",
		old:  "a section that goes away",
		new:  "",
	},
	{
		name: "multiline",
		old: "Section. 1.\nAll legislative Powers herein granted shall be vested\n" +
			"in a Congress of the United States.\n",
		new: "Section. 1.\nAll legislative Powers herein granted shall be vested\n" +
			"in a Congress of the United States, which shall consist of a Senate\n" +
			"and House of Representatives.\n",
	},
	{
		name: "non-ascii",
		old:  "naïve café driver",
		new:  "naïve café réviseur",
	},
}

func TestCreateApplyRoundTrip(t *testing.T) {
	for _, tt := range roundTripTests {
		t.Run(tt.name, func(t *testing.T) {
			patches := CreatePatches(tt.old, tt.new)
			got, err := ApplyPatches(tt.old, patches)
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if got != tt.new {
				t.Errorf("got %q, want %q", got, tt.new)
			}
		})
	}
}

func TestNoOpPatch(t *testing.T) {
	for _, text := range []string{"", "stable", "line one\nline two\n"} {
		patches := CreatePatches(text, text)
		got, err := ApplyPatches(text, patches)
		if err != nil {
			t.Fatalf("apply failed for %q: %v", text, err)
		}
		if got != text {
			t.Errorf("no-op patch changed %q to %q", text, got)
		}
	}
}

func TestCreatePatchesDeterministic(t *testing.T) {
	old, new := "Hello, world!", "Hello, beautiful world!"
	if a, b := CreatePatches(old, new), CreatePatches(old, new); a != b {
		t.Errorf("patch text differs across calls:\n%q\n%q", a, b)
	}
}
