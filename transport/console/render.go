package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const emptyGlyph = "_"

// RenderBoard prints the grid with 1-indexed row and column labels.
func (that *Console) RenderBoard(board *entity.Board) {
	that.printf("%s", FormatBoard(board))
}

func FormatBoard(board *entity.Board) string {
	var sb strings.Builder

	for col := range entity.BoardSize {
		sb.WriteString("\t")
		sb.WriteString(strconv.Itoa(col + 1))
	}
	sb.WriteString("\n")

	for row := range entity.BoardSize {
		sb.WriteString(strconv.Itoa(row + 1))
		sb.WriteString(" | ")

		for col := range entity.BoardSize {
			glyph := string(board.Cell(row, col))
			if !board.IsOccupied(row, col) {
				glyph = emptyGlyph
			}

			sb.WriteString(glyph)
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
