package tui

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/core"
)

// TitleAnimation times the title screen: an intro that plays once, a short
// hold on its last frame, then a loop over the tail of the intro.
type TitleAnimation struct {
	IntroFrames int
	IntroFPS    int
	Hold        time.Duration
	LoopFirst   int // First frame of the loop; the loop ends on the last intro frame
	LoopFPS     int
}

// DefaultTitleAnimation returns the stock title timing.
func DefaultTitleAnimation() TitleAnimation {
	return TitleAnimation{
		IntroFrames: 53,
		IntroFPS:    12,
		Hold:        time.Second,
		LoopFirst:   21,
		LoopFPS:     10,
	}
}

// IntroDuration is how long the intro plays before the hold.
func (a TitleAnimation) IntroDuration() time.Duration {
	return time.Duration(a.IntroFrames) * time.Second / time.Duration(a.IntroFPS)
}

// Frame returns the frame to show elapsed after the title appeared and
// whether the animation has entered its loop.
func (a TitleAnimation) Frame(elapsed time.Duration) (frame int, looping bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	last := a.IntroFrames - 1
	intro := a.IntroDuration()
	if elapsed < intro {
		return min(int(elapsed*time.Duration(a.IntroFPS)/time.Second), last), false
	}
	if elapsed < intro+a.Hold {
		return last, false
	}
	n := int((elapsed - intro - a.Hold) * time.Duration(a.LoopFPS) / time.Second)
	return a.LoopFirst + n%(last-a.LoopFirst+1), true
}

var titleGlyphs = map[rune][5]string{
	'E': {"#####", "#    ", "#### ", "#    ", "#####"},
	'G': {" ####", "#    ", "# ###", "#   #", " ### "},
	'H': {"#   #", "#   #", "#####", "#   #", "#   #"},
	'U': {"#   #", "#   #", "#   #", "#   #", " ### "},
	'N': {"#   #", "##  #", "# # #", "#  ##", "#   #"},
	'T': {"#####", "  #  ", "  #  ", "  #  ", "  #  "},
	' ': {"  ", "  ", "  ", "  ", "  "},
}

// bannerLines spells text in block glyphs.
func bannerLines(text string) []string {
	lines := make([]string, 5)
	for i, r := range text {
		g, ok := titleGlyphs[r]
		if !ok {
			continue
		}
		for row := range lines {
			if i > 0 {
				lines[row] += " "
			}
			lines[row] += g[row]
		}
	}
	return lines
}

var (
	titleBanner = bannerLines("EGG HUNT")

	eggSprite     = []string{" .-. ", "(   )", " `-' "}
	crackedSprite = []string{" .^. ", "( v )", " `-' "}
	chickSprite   = []string{" __  ", "(o > ", " ^^  "}
)

const (
	revealFrames = 21 // Banner is fully drawn after this many frames
	crackFrame   = 37
	hatchFrame   = 45
)

// renderTitle draws the title screen for the given animation frame.
func renderTitle(dst *core.Screen, frame int, looping bool) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	bannerW := len(titleBanner[0])
	top := max(h/2-7, 0)
	left := (w - bannerW) / 2

	reveal := bannerW
	if frame < revealFrames {
		reveal = (frame + 1) * bannerW / revealFrames
	}
	for row, line := range titleBanner {
		dst.DrawTextColored(left, top+row, line[:reveal], core.ColorBrightYellow)
	}

	if frame >= revealFrames {
		sprite, color, dx, dy := titleSprite(frame)
		sx := (w-len(sprite[0]))/2 + dx
		sy := top + len(titleBanner) + 2 + dy
		for row, line := range sprite {
			dst.DrawTextColored(sx, sy+row, line, color)
		}
	}

	// Blinks once looping.
	if frame >= revealFrames && (!looping || (frame/5)%2 == 0) {
		prompt := "press any key to start"
		dst.DrawTextColored((w-len(prompt))/2, top+len(titleBanner)+7, prompt, core.ColorBrightWhite)
	}

	help := "WASD/arrows move  SPACE throw  P pause  Q quit"
	dst.DrawTextColored((w-len(help))/2, h-1, help, core.ColorGray)
}

// titleSprite picks the egg sprite for frame: wobbling, cracked, then a
// hopping chick.
func titleSprite(frame int) (sprite []string, color core.Color, dx, dy int) {
	switch {
	case frame >= hatchFrame:
		return chickSprite, core.ColorYellow, 0, -(frame % 2)
	case frame >= crackFrame:
		return crackedSprite, core.ColorWhite, 0, 0
	default:
		wobble := [4]int{-1, 0, 1, 0}
		return eggSprite, core.ColorWhite, wobble[(frame/2)%4], 0
	}
}
