package battle

import (
	"strings"

	"github.com/mitchelldurbincs/GridTactics/internal/common"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/units"
)

// Board symbols
const (
	HoleSymbol       = " "
	FloorSymbol      = "·"
	WallSymbol       = "▲"
	WalkableSymbol   = "○"
	AttackableSymbol = "×"
	PathSymbol       = "•"
	PlayerSymbol     = "P"
	EnemySymbol      = "E"
)

// Board returns a text rendering of the battlefield. With color set, units and
// highlights use ANSI colors.
func (s *Session) Board(color bool) string {
	lo, hi := s.graph.Bounds()
	width := hi.X - lo.X + 1
	height := hi.Y - lo.Y + 1

	onPath := make(map[*core.Tile]bool, len(s.preview))
	for _, t := range s.preview {
		onPath[t] = true
	}

	var sb strings.Builder
	sb.Grow((width*12 + 8) * (height + 3))

	sb.WriteString("   ")
	for x := lo.X; x <= hi.X; x++ {
		sb.WriteString(common.IntToStringFixedWidth(x, 2))
	}
	sb.WriteString("\n")

	for y := lo.Y; y <= hi.Y; y++ {
		sb.WriteString(common.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := lo.X; x <= hi.X; x++ {
			sb.WriteString(" ")
			sb.WriteString(s.tileSymbol(core.NewCoordinate(x, y), onPath, color))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(FloorSymbol + "=floor " + WallSymbol + "=wall " +
		WalkableSymbol + "=walkable " + AttackableSymbol + "=attackable " +
		PathSymbol + "=path " + PlayerSymbol + "/" + EnemySymbol + "=units (lowercase: acted)\n")

	return sb.String()
}

func (s *Session) tileSymbol(c core.Coordinate, onPath map[*core.Tile]bool, color bool) string {
	t := s.graph.TileAt(c)
	if t == nil {
		return HoleSymbol
	}

	symbol, tint := FloorSymbol, ""
	switch {
	case t.IsWall:
		symbol, tint = WallSymbol, common.ColorGray
	case onPath[t]:
		symbol, tint = PathSymbol, common.ColorYellow
	case t.Highlight == core.HighlightWalkable:
		symbol, tint = WalkableSymbol, common.ColorCyan
	case t.Highlight == core.HighlightAttackable:
		symbol, tint = AttackableSymbol, common.ColorRed
	}

	if u := s.roster.UnitAt(c); u != nil {
		symbol, tint = unitSymbol(u)
		if t.Highlight == core.HighlightAttackable && u.Team != s.activeTeam {
			tint = common.BgRed
		}
		if t.UnitSelected {
			tint = common.BgYellow
		}
	}

	if !color {
		return symbol
	}
	return common.Colorize(symbol, tint)
}

func unitSymbol(u *units.Unit) (string, string) {
	symbol, tint := PlayerSymbol, common.ColorBlue
	if u.Team == units.TeamEnemy {
		symbol, tint = EnemySymbol, common.ColorRed
	}
	if u.HasActed {
		symbol = strings.ToLower(symbol)
		tint = common.ColorGray
	}
	return symbol, tint
}
