package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/biomass/internal/core"
	"github.com/vovakirdan/biomass/internal/engine"
)

// Minimum screen size for the HUD.
const (
	MinWidth  = 60
	MinHeight = 18
)

const (
	headerRows   = 4
	maxSplitBlob = 6
)

var tierColors = map[engine.ValueTier]core.Color{
	engine.TierGood:    core.ColorBrightGreen,
	engine.TierNeutral: core.ColorYellow,
	engine.TierPoor:    core.ColorRed,
}

// Render draws the HUD: header with progress, shop panel, world map and footer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Terminal too small: %dx%d, need %dx%d", w, h, MinWidth, MinHeight), core.ColorAlert)
		return
	}

	header, rest := dst.Bounds().SplitRows(headerRows)
	body, footer := rest.SplitRows(rest.H - 1)
	shop, world := body.SplitColumns(body.W * 11 / 20)

	g.renderHeader(dst, header)
	g.renderShop(dst, shop)
	g.renderWorld(dst, world)
	g.renderFooter(dst, footer)

	if g.paused {
		y := body.Y + body.H/2
		dst.FillRect(core.NewRect(body.X, y-1, body.W, 3), ' ', core.ColorDefault)
		dst.DrawTextCentered(y, "PAUSED  press p to resume", core.ColorBrightYellow)
	}
}

func (g *Game) renderHeader(dst *core.Screen, r core.Rect) {
	s := g.state
	lvl := g.eng.CurrentLevel(s)
	catalog := g.eng.Catalog()

	dst.DrawTextColored(r.X+1, r.Y, "BIOMASS", core.ColorTitle)
	dst.DrawTextRight(r.Right()-1, r.Y,
		fmt.Sprintf("%s  %d/%d", lvl.Title(), lvl.ID+1, catalog.Len()), core.ColorTitle)

	stats := fmt.Sprintf("Biomass %s   Growth %s   Feed +%s   Time %s",
		FormatBiomass(s.Biomass), FormatRate(s.Growth),
		FormatBiomass(engine.EffectiveClickPower(s)), FormatDuration(s.Elapsed))
	dst.DrawTextColored(r.X+1, r.Y+1, stats, core.ColorWhite)

	var label string
	if next, ok := g.eng.NextLevel(s); ok {
		label = fmt.Sprintf("Next: %s at %s ", next.Title(), FormatBiomass(next.Threshold))
	} else {
		label = "Final form reached. r starts a new run "
	}
	dst.DrawTextColored(r.X+1, r.Y+2, label, core.ColorMuted)
	barX := r.X + 1 + utf8.RuneCountInString(label)
	dst.DrawBar(barX, r.Y+2, r.Right()-barX-1, g.eng.Progress(s), core.ColorBlob, core.ColorMuted)

	dst.FillRect(core.NewRect(r.X, r.Y+3, r.W, 1), '─', core.ColorMuted)
}

// shopRow is one rendered line of the shop panel.
type shopRow struct {
	name   string
	price  string
	color  core.Color
	dim    bool // Price drawn muted
	detail string
}

func (g *Game) shopRows() []shopRow {
	s := g.state
	if g.panel == PanelUpgrades {
		rows := make([]shopRow, 0, len(s.UpgradeOrder))
		for _, id := range s.UpgradeOrder {
			u := s.Upgrades[id]
			row := shopRow{
				name:   u.Name,
				price:  FormatBiomass(u.Cost),
				color:  core.ColorWhite,
				dim:    !engine.CanAfford(u.Cost, s),
				detail: fmt.Sprintf("x%g %s. %s", u.Effect, u.Type, u.Description),
			}
			switch {
			case u.Purchased:
				row.name, row.price, row.color = "✓ "+u.Name, "owned", core.ColorGreen
			case !g.eng.IsUnlocked(u.UnlockedAtLevel, s):
				row = lockedRow(g.levelDisplayName(u.UnlockedAtLevel))
			}
			rows = append(rows, row)
		}
		return rows
	}

	tiers := make(map[engine.GeneratorID]engine.ValueTier, len(s.GeneratorOrder))
	for _, rank := range engine.RankGeneratorValues(s) {
		tiers[rank.GeneratorID] = rank.Tier
	}

	rows := make([]shopRow, 0, len(s.GeneratorOrder))
	for _, id := range s.GeneratorOrder {
		gen := s.Generators[id]
		if !g.eng.IsUnlocked(gen.UnlockedAtLevel, s) {
			rows = append(rows, lockedRow(g.levelDisplayName(gen.UnlockedAtLevel)))
			continue
		}
		cost := gen.NextCost()
		rows = append(rows, shopRow{
			name:   fmt.Sprintf("%s x%d", gen.Name, gen.Level),
			price:  FormatBiomass(cost),
			color:  tierColors[tiers[id]],
			dim:    !engine.CanAfford(cost, s),
			detail: fmt.Sprintf("+%s each. %s", FormatRate(gen.BaseEffect), gen.Description),
		})
	}
	return rows
}

func lockedRow(level string) shopRow {
	return shopRow{
		name:   "???",
		price:  "locked",
		color:  core.ColorMuted,
		dim:    true,
		detail: "Unlocks at " + level,
	}
}

func (g *Game) renderShop(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorMuted)
	inner := r.Inset(1)

	tabs := []struct {
		panel Panel
		label string
	}{
		{PanelGenerators, " Generators "},
		{PanelUpgrades, " Upgrades "},
	}
	x := inner.X
	for _, tab := range tabs {
		color := core.ColorMuted
		if tab.panel == g.panel {
			color = core.ColorTitle
		}
		dst.DrawTextColored(x, inner.Y, tab.label, color)
		x += utf8.RuneCountInString(tab.label) + 1
	}

	rows := g.shopRows()
	list := core.NewRect(inner.X, inner.Y+1, inner.W, inner.H-2)
	offset := max(0, g.cursor-list.H+1)

	for i := 0; i < list.H && offset+i < len(rows); i++ {
		idx := offset + i
		row := rows[idx]
		y := list.Y + i

		marker := "  "
		if idx == g.cursor {
			marker = "› "
		}
		priceColor := core.ColorWhite
		if row.dim {
			priceColor = core.ColorMuted
		}

		dst.DrawTextColored(list.X, y, marker, core.ColorTitle)
		dst.DrawTextColored(list.X+2, y, row.name, row.color)
		dst.DrawTextRight(list.Right(), y, row.price, priceColor)
	}

	if g.cursor < len(rows) {
		detail := rows[g.cursor].detail
		if n := utf8.RuneCountInString(detail); n > inner.W {
			detail = string([]rune(detail)[:max(inner.W-1, 0)]) + "…"
		}
		dst.DrawTextColored(inner.X, inner.Bottom()-1, detail, core.ColorMuted)
	}
}

func (g *Game) renderWorld(dst *core.Screen, r core.Rect) {
	lvl := g.eng.CurrentLevel(g.state)
	dst.DrawBox(r, core.ColorMuted)
	dst.DrawTextColored(r.X+2, r.Y, " "+lvl.Title()+" ", core.ColorTitle)

	rules := g.eng.Rules()
	vp := core.Viewport{Area: r.Inset(1), HalfWidth: rules.WorldHalfWidth, HalfHeight: rules.WorldHalfHeight}

	for _, n := range engine.NearbyNutrients(g.state, engine.Position{}) {
		x, y := vp.Project(n.X, n.Y)
		dst.SetColored(x, y, '•', core.ColorNutrient)
	}

	cx, cy := vp.Project(0, 0)
	radius := g.blobRadius(vp.Area)
	drawBlob(dst, cx, cy, radius)

	extra := min(int(engine.SplitFactor(g.state))-1, maxSplitBlob)
	offsets := [maxSplitBlob][2]int{
		{-2*radius - 3, 0}, {2*radius + 3, 0},
		{0, -radius - 2}, {0, radius + 2},
		{-2*radius - 3, -radius - 1}, {2*radius + 3, radius + 1},
	}
	for i := 0; i < extra; i++ {
		dst.SetColored(cx+offsets[i][0], cy+offsets[i][1], 'o', core.ColorBlob)
	}
}

// blobRadius grows with the level and blob upgrades, capped to fit the map.
func (g *Game) blobRadius(area core.Rect) int {
	r := int(float64(g.state.CurrentLevelID+1) * engine.BlobScale(g.state) / 2)
	return core.Clamp(r, 0, max(area.H/2-1, 0))
}

// drawBlob draws a filled ellipse twice as wide as it is tall, which looks
// round in a terminal.
func drawBlob(dst *core.Screen, cx, cy, radius int) {
	if radius == 0 {
		dst.SetColored(cx, cy, '@', core.ColorBlob)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -2 * radius; dx <= 2*radius; dx++ {
			if dx*dx+4*dy*dy <= 4*radius*radius {
				dst.SetColored(cx+dx, cy+dy, '█', core.ColorBlob)
			}
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, r core.Rect) {
	if g.messageTicks > 0 && g.message != "" {
		dst.DrawTextColored(r.X+1, r.Y, g.message, g.messageColor)
		return
	}
	dst.DrawTextColored(r.X+1, r.Y, "↑↓ select  tab switch  enter buy  space eat  f feed  p pause  q quit", core.ColorMuted)
}
