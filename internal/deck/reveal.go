package deck

// Bullets returns the number of bullet lines in the slide, which is also the
// slide's maximum reveal level.
func (s Slide) Bullets() int {
	count := 0
	inSection := false
	for _, line := range s.lines {
		if Classify(line, inSection) == Bullet {
			inSection = true
			count++
		}
	}
	return count
}

// Visible resolves the lines shown at the given reveal level. The result is a
// pure function of the slide and the level: a stable subsequence of the
// slide's lines, recomputed from scratch on every call.
//
// Levels outside [0, Bullets()] are clamped. Blank lines between the start of
// the bullet section and the first revealed bullet are suppressed; blank
// lines elsewhere are kept so the original vertical spacing survives.
// Continuation lines appear only once every bullet is revealed.
func (s Slide) Visible(level int) []string {
	total := s.Bullets()
	if level < 0 {
		level = 0
	}
	if level > total {
		level = total
	}

	var out []string
	inSection := false
	emitted := 0
	for _, line := range s.lines {
		switch Classify(line, inSection) {
		case Blank:
			if !inSection || emitted > 0 {
				out = append(out, line)
			}
		case Bullet:
			inSection = true
			if emitted < level {
				out = append(out, line)
				emitted++
			}
		case Continuation:
			if level == total {
				out = append(out, line)
			}
		case Plain:
			out = append(out, line)
		}
	}
	return out
}
