package deck

import (
	"reflect"
	"testing"
)

func TestBullets(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"no bullets", "just\nprose", 0},
		{"two bullets", "A\n- one\n- two\nB", 2},
		{"markup does not hide bullets", "<y>- one</y>\n<g>- two</g>", 2},
		{"continuation is not a bullet", "- one\ntrailing prose", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slide := Load(tt.body)[0]
			if got := slide.Bullets(); got != tt.want {
				t.Errorf("Bullets() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVisibleProgression(t *testing.T) {
	deck := Load("A\n- one\n- two\nB\n-----\nC")
	if len(deck) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(deck))
	}
	slide := deck[0]
	if slide.Bullets() != 2 {
		t.Fatalf("expected 2 bullets, got %d", slide.Bullets())
	}

	tests := []struct {
		level int
		want  []string
	}{
		{0, []string{"A"}},
		{1, []string{"A", "- one"}},
		{2, []string{"A", "- one", "- two", "B"}},
	}
	for _, tt := range tests {
		if got := slide.Visible(tt.level); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Visible(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestVisibleIsDeterministic(t *testing.T) {
	slide := Load("intro\n\n- a\n\n- b\n- c\noutro")[0]
	for level := 0; level <= slide.Bullets(); level++ {
		first := slide.Visible(level)
		second := slide.Visible(level)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Visible(%d) not deterministic: %v then %v", level, first, second)
		}
	}
}

func TestVisibleAtZeroHidesBulletSection(t *testing.T) {
	slides := []string{
		"A\n- one\n- two\nB",
		"- only bullets\n- here",
		"prose\n\n- x\nwrap up",
	}
	for _, body := range slides {
		slide := Load(body)[0]
		inSection := false
		for _, line := range slide.Visible(0) {
			switch Classify(line, inSection) {
			case Bullet:
				inSection = true
				t.Errorf("Visible(0) of %q leaked bullet %q", body, line)
			case Continuation:
				t.Errorf("Visible(0) of %q leaked continuation %q", body, line)
			}
		}
	}
}

func TestVisibleFullRevealShowsEverything(t *testing.T) {
	slide := Load("intro\n\n- a\n\n- b\noutro")[0]
	want := []string{"intro", "", "- a", "", "- b", "outro"}
	if got := slide.Visible(slide.Bullets()); !reflect.DeepEqual(got, want) {
		t.Errorf("Visible(full) = %v, want %v", got, want)
	}
}

func TestVisibleSuppressesBlanksBeforeFirstRevealedBullet(t *testing.T) {
	slide := Load("- a\n\n- b")[0]

	// Nothing revealed: the blank between the unrevealed bullets is
	// suppressed too.
	if got := slide.Visible(0); len(got) != 0 {
		t.Errorf("Visible(0) = %v, want no lines", got)
	}

	// One bullet out: the blank after it is spacing again.
	want := []string{"- a", ""}
	if got := slide.Visible(1); !reflect.DeepEqual(got, want) {
		t.Errorf("Visible(1) = %v, want %v", got, want)
	}
}

func TestVisibleWithholdsContinuationUntilFullReveal(t *testing.T) {
	slide := Load("- a\n- b\nthe reveal")[0]
	for level := 0; level < slide.Bullets(); level++ {
		for _, line := range slide.Visible(level) {
			if line == "the reveal" {
				t.Errorf("continuation shown at level %d", level)
			}
		}
	}
	full := slide.Visible(slide.Bullets())
	if full[len(full)-1] != "the reveal" {
		t.Errorf("continuation missing at full reveal: %v", full)
	}
}

func TestVisibleClampsLevel(t *testing.T) {
	slide := Load("A\n- one\n- two\nB")[0]
	if got, want := slide.Visible(99), slide.Visible(slide.Bullets()); !reflect.DeepEqual(got, want) {
		t.Errorf("Visible(99) = %v, want %v", got, want)
	}
	if got, want := slide.Visible(-1), slide.Visible(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Visible(-1) = %v, want %v", got, want)
	}
}
