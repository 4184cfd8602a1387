package rawterm

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

const cursorHome = "\x1b[H"

// Paint writes the whole screen starting at the top-left corner. Raw mode
// turns off newline translation, so rows are separated by CR LF.
func Paint(w io.Writer, s *core.Screen) error {
	frame := cursorHome + strings.ReplaceAll(tui.RenderScreen(s), "\n", "\r\n")
	if _, err := io.WriteString(w, frame); err != nil {
		return fmt.Errorf("rawterm: paint: %w", err)
	}
	return nil
}
