package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

type column struct {
	title string
	align alignment
}

// table draws a titled box around rows of cells. Widths are measured in
// terminal columns so names with wide characters stay aligned.
func table(title string, columns []column, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	rule := func(left, middle, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return left + strings.Join(parts, middle) + right + "\n"
	}
	line := func(cells []string, header bool) string {
		parts := make([]string, len(columns))
		for i := range columns {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if columns[i].align == alignRight && !header {
				parts[i] = " " + runewidth.FillLeft(cell, widths[i]) + " "
			} else {
				parts[i] = " " + runewidth.FillRight(cell, widths[i]) + " "
			}
		}
		return "│" + strings.Join(parts, "│") + "│\n"
	}

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.title
	}

	sb := &strings.Builder{}
	sb.WriteString(title + "\n")
	sb.WriteString(rule("┌", "┬", "┐"))
	sb.WriteString(line(titles, true))
	sb.WriteString(rule("├", "┼", "┤"))
	for _, row := range rows {
		sb.WriteString(line(row, false))
	}
	sb.WriteString(rule("└", "┴", "┘"))
	return sb.String()
}

// Leaderboard lists players by wins, in the order given.
func Leaderboard(entries []*models.LeaderboardEntry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{fmt.Sprint(i + 1), e.Player, fmt.Sprint(e.Wins), fmt.Sprint(e.Losses)})
	}
	return table("Leaderboard", []column{
		{title: "#", align: alignRight},
		{title: "Player"},
		{title: "Wins", align: alignRight},
		{title: "Losses", align: alignRight},
	}, rows)
}

// SavedGames lists stored snapshots.
func SavedGames(games []*models.SavedGame) string {
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		status := "in progress"
		if g.Finished() {
			winner := g.Player1
			if g.Winner == types.Player2.String() {
				winner = g.Player2
			}
			status = winner + " won"
		}
		rows = append(rows, []string{
			g.ID,
			g.Player1,
			g.Player2,
			g.Timestamp.Local().Format(time.DateTime),
			Duration(g.Duration),
			fmt.Sprint(g.Moves),
			status,
		})
	}
	return table("Saved Games", []column{
		{title: "ID"},
		{title: "Player 1"},
		{title: "Player 2"},
		{title: "Timestamp"},
		{title: "Duration", align: alignRight},
		{title: "Moves", align: alignRight},
		{title: "Status"},
	}, rows)
}

// Duration formats elapsed play time as h:mm:ss.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
