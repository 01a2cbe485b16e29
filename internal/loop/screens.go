package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/game"
	"github.com/tomz197/asteroid-shooter/internal/stats"
)

// ControlsHelp is the one-line key reference shown under the playfield.
const ControlsHelp = "Arrows/WAD: thrust+rotate  X: reverse  Space: shoot  R: report  S: restart  Q: quit"

// HUDLines returns the score, lives and level readouts.
func HUDLines(snap *game.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Lives: %d", snap.Lives),
		fmt.Sprintf("Level: %d", snap.Level),
	}
}

// BannerLines returns the centred message for the non-playing modes, or
// nil while playing.
func BannerLines(snap *game.Snapshot, reportEnabled bool) []string {
	switch snap.Mode {
	case game.ModeLevelWon:
		return []string{
			fmt.Sprintf("LEVEL %d COMPLETE!", snap.Level),
			"Press N for next level",
		}
	case game.ModeGameOver:
		prompt := "Press S to restart"
		if reportEnabled {
			prompt = "Press R for report, S to restart"
		}
		return []string{
			"GAME OVER!",
			fmt.Sprintf("Final score: %d", snap.Score),
			prompt,
		}
	case game.ModeReport:
		if snap.Report == nil {
			return nil
		}
		return ReportLines(*snap.Report)
	default:
		return nil
	}
}

// ReportLines lays out the end-of-game statistics report.
func ReportLines(r stats.Report) []string {
	return []string{
		"ASTEROID SHOOTER - GAME REPORT",
		"------------------------------",
		"",
		"FINAL STATISTICS:",
		fmt.Sprintf("  Final Score: %d", r.Score),
		fmt.Sprintf("  Level Reached: %d", r.Level),
		fmt.Sprintf("  Asteroids Destroyed: %d", r.TotalDestroyed),
		fmt.Sprintf("  Survival Time: %d seconds", int(r.Survival/time.Second)),
		fmt.Sprintf("  Lives Lost: %d", r.LivesLost),
		"",
		"ASTEROID BREAKDOWN:",
		fmt.Sprintf("  Large Asteroids: %d", r.LargeDestroyed),
		fmt.Sprintf("  Medium Asteroids: %d", r.MediumDestroyed),
		fmt.Sprintf("  Small Asteroids: %d", r.SmallDestroyed),
		"",
		"PERFORMANCE RATING:",
		fmt.Sprintf("  Rank: %s", r.Rank),
		fmt.Sprintf("  Overall Rating: %d/100", r.Rating),
		"",
		"Press any key to return to game",
	}
}

// drawHUD writes the readouts along the top row.
func drawHUD(cw *draw.ChunkWriter, cols int, snap *game.Snapshot) {
	lines := HUDLines(snap)
	// Trailing spaces wipe digits left over from a longer previous value.
	cw.WriteAt(2, 1, lines[0]+"  ")
	cw.WriteAt(cols/2-len(lines[2])/2, 1, lines[2])
	cw.WriteAt(cols-len(lines[1])-1, 1, lines[1])
}

// drawCentered writes lines as a block centred on the canvas.
func drawCentered(cw *draw.ChunkWriter, cols, rows int, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	left := max(cols/2-width/2, 1)
	top := max(rows/2-len(lines)/2, 1)
	for i, l := range lines {
		cw.WriteAt(left, top+i, l)
	}
}

// drawFooter writes the controls help on the bottom row when it fits.
func drawFooter(cw *draw.ChunkWriter, cols, rows int) {
	if len(ControlsHelp)+2 > cols {
		return
	}
	cw.WriteAt(2, rows, ControlsHelp)
}

// drawIdleWarning tells the player the connection is about to close.
func drawIdleWarning(cw *draw.ChunkWriter, cols, rows int, left time.Duration) {
	msg := fmt.Sprintf("Idle - disconnecting in %ds. Press any key.", int(left.Round(time.Second)/time.Second))
	cw.WriteAt(max(cols/2-len(msg)/2, 1), rows-1, msg)
}
