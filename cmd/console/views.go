package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
	"github.com/jwebster45206/modern-world/pkg/textfilter"
)

type gameView int

const (
	viewDashboard gameView = iota
	viewCabinet
	viewTech
	viewDiplomacy
	viewArchive
)

var viewLabels = []string{"Durum", "Kabine", "Ar-Ge", "Diplomasi", "Arşiv"}

func (v gameView) next() gameView {
	return (v + 1) % gameView(len(viewLabels))
}

func (v gameView) prev() gameView {
	return (v + gameView(len(viewLabels)) - 1) % gameView(len(viewLabels))
}

func renderTabs(active gameView) string {
	tabs := make([]string, len(viewLabels))
	for i, label := range viewLabels {
		text := fmt.Sprintf(" %d %s ", i+1, textfilter.Heading(label))
		if gameView(i) == active {
			tabs[i] = activeTabStyle.Render(text)
		} else {
			tabs[i] = tabStyle.Render(text)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderHeader(gs *state.GameState) string {
	return titleStyle.Render(textfilter.Heading("Harekat Merkezi")) + "  " +
		badgeStyle.Render(gs.PlayerRole) + " " +
		badgeStyle.Render(gs.Country+" HQ") + "  " +
		promptStyle.Render("GÜNCEL TARİH: "+gs.CurrentDate)
}

func renderStats(s state.Stats) string {
	items := []struct {
		label  string
		value  float64
		suffix string
	}{
		{"GSYH", s.GDP, "B$"},
		{"Enflasyon", s.Inflation, "%"},
		{"Bütçe", s.BudgetBalance, "B$"},
		{"Ordu", s.ArmyMorale, "/100"},
		{"Halk", s.PublicSupport, "/100"},
		{"İstikrar", s.Stability, "/100"},
		{"Ar-Ge", s.TechPoints, " TP"},
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = statLabelStyle.Render(it.label+" ") + statValueStyle.Render(formatNumber(it.value)+it.suffix)
	}
	return strings.Join(parts, separatorStyle.Render(" │ "))
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	return wordwrap.String(textfilter.Sanitize(text), width)
}

func renderDashboard(gs *state.GameState, width int) string {
	var b strings.Builder
	latest := gs.LatestReport()
	if latest == nil {
		b.WriteString(promptStyle.Render("Henüz rapor yok.") + "\n")
		return b.String()
	}

	b.WriteString(sectionStyle.Render("BAŞDANIŞMAN ANALİZİ") + "\n")
	b.WriteString(summaryStyle.Render(wrap(latest.Summary, width)) + "\n\n")

	b.WriteString(warnStyle.Render("BEKLEYEN KRİTİK SORUNLAR") + "\n")
	if len(latest.PendingIssues) == 0 {
		b.WriteString(promptStyle.Render("Ülke sınırları dahilinde rapor edilmiş bir kriz bulunmuyor.") + "\n")
	}
	for i, issue := range latest.PendingIssues {
		b.WriteString(fmt.Sprintf("%s %s\n", warnStyle.Render(fmt.Sprintf("[%d]", i+1)), wrap(issue, width-4)))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("GİZLİ İSTİHBARAT") + "\n")
	b.WriteString(intelStyle.Render(wrap(latest.Intelligence, width)) + "\n\n")

	b.WriteString(sectionStyle.Render("KABİNE GÜNDEMİ") + "\n")
	if len(latest.CabinetDecisions) == 0 {
		b.WriteString(promptStyle.Render("BUGÜNLÜK GÜNDEM TAMAMLANDI") + "\n")
	}
	for i, d := range latest.CabinetDecisions {
		b.WriteString(renderDecision(gs, i, d, width))
	}

	if len(gs.StagedDecisions) > 0 {
		b.WriteString("\n" + sectionStyle.Render("ONAYLANAN EMİRLER (HAREKAT PLANI)") + "\n")
		for _, sd := range gs.StagedDecisions {
			b.WriteString("  " + promptStyle.Render(sd.DecisionTitle) + " → " + renderOption(sd.SelectedOption) + "\n")
		}
	}
	return b.String()
}

func renderDecision(gs *state.GameState, index int, d state.Decision, width int) string {
	var b strings.Builder
	title := fmt.Sprintf("%d. %s", index+1, d.Title)
	if m, ok := gs.Ministry(d.FromMinistryID); ok {
		title += promptStyle.Render(" (" + m.Name + ")")
	}
	b.WriteString(speakerStyle.Render(title) + "\n")
	if d.Description != "" {
		b.WriteString("   " + wrap(d.Description, width-3) + "\n")
	}

	if option, staged := gs.StagedOption(d.Title); staged {
		b.WriteString("   " + renderOption(option) + "\n")
		return b.String()
	}
	for j, opt := range d.Options {
		line := fmt.Sprintf("   %d) %s", j+1, opt.Label)
		if opt.Impact != "" {
			line += promptStyle.Render(" · " + opt.Impact)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(promptStyle.Render(fmt.Sprintf("   /karar %d <seçenek>  ·  /veto %d", index+1, index+1)) + "\n")
	return b.String()
}

func renderOption(option string) string {
	if option == state.VetoOption {
		return errorStyle.Render(option)
	}
	return okStyle.Render(option)
}

func renderCabinet(gs *state.GameState, width int) string {
	var b strings.Builder
	for _, m := range gs.Ministries {
		b.WriteString(speakerStyle.Render(textfilter.Heading(m.Name)) + "  " + badgeStyle.Render(m.MinisterName) + "\n")
		if m.Portfolio != "" {
			b.WriteString("  " + promptStyle.Render(m.Portfolio) + "\n")
		}
		b.WriteString(fmt.Sprintf("  OPERASYONEL MORAL %s %%%s\n", renderBar(m.Morale, 20), formatNumber(m.Morale)))
		b.WriteString(fmt.Sprintf("  Bütçe payı %%%s · Verimlilik %%%s\n", formatNumber(m.BudgetShare), formatNumber(m.Efficiency)))
		b.WriteString("  " + statLabelStyle.Render("SON FAALİYETLER:") + "\n")
		if len(m.AutomatedActions) == 0 {
			b.WriteString("    " + promptStyle.Render("Bakanlık rutin faaliyetlerini sürdürüyor.") + "\n")
		}
		for _, a := range m.AutomatedActions {
			b.WriteString("    - " + wrap(a, width-6) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderTech(gs *state.GameState, width int) string {
	var b strings.Builder
	balance := gs.CurrentStats.TechPoints
	b.WriteString(sectionStyle.Render("ULUSAL TEKNOLOJİ MATRİSİ") + "  " +
		statLabelStyle.Render("MEVCUT PUAN ") + statValueStyle.Render(formatNumber(balance)+" TP") + "\n\n")

	for i, tech := range catalog.Technologies() {
		var status string
		switch {
		case gs.IsUnlocked(tech.ID):
			status = okStyle.Render("SİSTEM AKTİF")
		case gs.CanAfford(tech):
			status = speakerStyle.Render(fmt.Sprintf("%s TP - PROTOKOLÜ BAŞLAT (/arge %d)", formatNumber(tech.Cost), i+1))
		default:
			status = errorStyle.Render(fmt.Sprintf("%s TP GEREKLİ", formatNumber(tech.Cost)))
		}
		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, titleStyle.Render(tech.Name), badgeStyle.Render(string(tech.Category))))
		b.WriteString("   " + wrap(tech.Description, width-3) + "\n")
		b.WriteString("   " + statLabelStyle.Render("OPERASYONEL AVANTAJ: ") + tech.Benefit + "\n")
		b.WriteString("   " + status + "\n\n")
	}
	return b.String()
}

func renderDiplomacy(gs *state.GameState) string {
	if len(gs.Relations) == 0 {
		return promptStyle.Render("Henüz diplomatik temas kaydı yok.") + "\n"
	}
	countries := make([]string, 0, len(gs.Relations))
	for c := range gs.Relations {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	var b strings.Builder
	b.WriteString(sectionStyle.Render("DİPLOMATİK İLİŞKİLER") + "\n\n")
	for _, c := range countries {
		score := gs.Relations[c]
		b.WriteString(fmt.Sprintf("%-24s %s %s\n", c, renderBar(score, 20), formatNumber(score)))
	}
	return b.String()
}

func renderArchive(gs *state.GameState, width int) string {
	if len(gs.History) == 0 {
		return promptStyle.Render("Arşiv boş.") + "\n"
	}
	var b strings.Builder
	for _, r := range gs.History {
		b.WriteString(sectionStyle.Render(r.Date))
		if r.Location != "" {
			b.WriteString(promptStyle.Render(" · " + r.Location))
		}
		b.WriteString("\n" + wrap(r.Summary, width) + "\n")
		for _, npc := range r.NPCActivity {
			b.WriteString(promptStyle.Render("  ["+npc.MinisterID+"] ") + wrap(npc.Action, width-8) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderBar draws value (0-100) as a fixed-width bar. Out of range values
// are drawn clamped; the number next to the bar stays exact.
func renderBar(value float64, width int) string {
	filled := int(value / 100 * float64(width))
	filled = max(0, min(width, filled))
	return okStyle.Render(strings.Repeat("█", filled)) + separatorStyle.Render(strings.Repeat("░", width-filled))
}

func renderView(v gameView, gs *state.GameState, width int) string {
	switch v {
	case viewCabinet:
		return renderCabinet(gs, width)
	case viewTech:
		return renderTech(gs, width)
	case viewDiplomacy:
		return renderDiplomacy(gs)
	case viewArchive:
		return renderArchive(gs, width)
	default:
		return renderDashboard(gs, width)
	}
}

// reportText is the plain-text form of a report placed on the clipboard.
func reportText(gs *state.GameState) string {
	r := gs.LatestReport()
	if r == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s (%s)\n\n", gs.Country, r.Date, gs.PlayerRole)
	b.WriteString(r.Summary + "\n\n")
	if len(r.PendingIssues) > 0 {
		b.WriteString("Bekleyen sorunlar:\n")
		for _, issue := range r.PendingIssues {
			b.WriteString("- " + issue + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("İstihbarat:\n" + r.Intelligence + "\n")
	return textfilter.Sanitize(b.String())
}
