package field

import (
	"strings"
	"testing"
)

func TestFormat_ExactWidth(t *testing.T) {
	labels := []string{"", "a", "github", "abc123", "google", "verylongservicename", "x y z"}

	for _, w := range []Width{Narrow, Wide} {
		for _, l := range labels {
			f := Format(l, w)

			if len(f.Text) != int(w) {
				t.Fatalf("Format(%q,%d) len=%d want=%d", l, w, len(f.Text), w)
			}
			if f.Text != strings.ToUpper(f.Text) {
				t.Fatalf("Format(%q,%d)=%q not uppercase", l, w, f.Text)
			}

			n := min(len(l), int(w))
			if f.Text[:n] != strings.ToUpper(l)[:n] {
				t.Fatalf("Format(%q,%d)=%q prefix mismatch", l, w, f.Text)
			}
			if f.Source != l {
				t.Fatalf("source not preserved: got=%q want=%q", f.Source, l)
			}
		}
	}
}

func TestFormat_PadsWithSpaces(t *testing.T) {
	f := Format("abc", Wide)
	if f.Text != "ABC     " {
		t.Fatalf("got %q", f.Text)
	}
}

func TestFormat_Truncates(t *testing.T) {
	f := Format("microsoft", Narrow)
	if f.Text != "MICROS" {
		t.Fatalf("got %q", f.Text)
	}
}

func TestFormat_SanitizesUnsafeCharacters(t *testing.T) {
	f := Format("a\"b\tcé", Wide)
	if f.Text != "A?B?C?  " {
		t.Fatalf("got %q", f.Text)
	}
}

func TestFormat_PanicsOnUnsupportedWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for width 7")
		}
	}()
	Format("x", Width(7))
}
