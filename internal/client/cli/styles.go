package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

func renderContact(c models.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(c.Name), tagStyle.Render("["+c.Type+"]"))
	if c.Email != "" {
		fmt.Fprintf(&b, "  email: %s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(&b, "  phone: %s\n", c.Phone)
	}
	b.WriteString(mutedStyle.Render("  id: " + c.ID))
	return b.String()
}

func renderContacts(list []models.Contact) string {
	parts := make([]string, 0, len(list))
	for _, c := range list {
		parts = append(parts, renderContact(c))
	}
	return strings.Join(parts, "\n\n")
}
