package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hepkit/pdg/particle"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderRow renders one particle as a compact table line.
func renderRow(p particle.Particle) string {
	mass := "?"
	if p.Mass != nil {
		mass = fmt.Sprintf("%g MeV", *p.Mass)
	}
	q := "?"
	if tc, ok := p.ThreeCharge(); ok {
		q = chargeLabel(int(tc))
	}
	j := "?"
	if v, ok := p.J(); ok {
		j = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%12d  %-16s %-14s Q=%-5s J=%s", int(p.ID), p.Name(), mass, q, j)
}

// renderHeader renders the column header matching renderRow.
func renderHeader() string {
	return headerStyle.Render(fmt.Sprintf("%12s  %-16s %-14s %-7s %s", "PDG ID", "Name", "Mass", "Charge", "Spin"))
}

func chargeLabel(threeCharge int) string {
	if threeCharge%3 == 0 {
		return fmt.Sprintf("%+d", threeCharge/3)
	}
	return fmt.Sprintf("%+d/3", threeCharge)
}

// renderDescription renders the full property listing of a particle.
func renderDescription(p particle.Particle) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(p.Name()))
	sb.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(p.Describe(), "\n"), "\n") {
		key, val, found := strings.Cut(line, ":")
		if !found {
			sb.WriteString(line + "\n")
			continue
		}
		sb.WriteString(labelStyle.Render(key+":") + val + "\n")
	}
	return sb.String()
}
