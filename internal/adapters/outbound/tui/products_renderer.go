package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// RenderProducts renders the catalog view: stat cards, then the table.
func RenderProducts(products []domain.Product, stats domain.CatalogStats) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("orderdesk") + "  " + dimStyle.Render("Products") + "\n\n")

	b.WriteString(statRow(
		statBox("Products", strconv.Itoa(stats.Count)),
		statBox("Avg. Price", fmt.Sprintf("$%.2f", stats.AveragePrice)),
		statBox("Highest", fmt.Sprintf("$%.2f", stats.HighestPrice)),
		statBox("Lowest", fmt.Sprintf("$%.2f", stats.LowestPrice)),
	))
	b.WriteString("\n\n")

	if len(products) == 0 {
		b.WriteString("  " + dimStyle.Render("No products found.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %s %s\n",
		columnStyle.Render(padRight("ID", 6)),
		columnStyle.Render(padRight("NAME", 28)),
		columnStyle.Render(padRight("PRICE", 10)),
		columnStyle.Render("IMAGE"),
	)
	b.WriteString("  " + separatorLine + "\n")

	for _, p := range products {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			padRight(strconv.Itoa(p.ID), 6),
			titleStyle.Render(padRight(p.Name, 28)),
			padRight(fmt.Sprintf("$%.2f", p.UnitPrice), 10),
			dimStyle.Render(p.ImageURL),
		)
	}
	return b.String()
}

// RenderProductSaved confirms a persisted product.
func RenderProductSaved(p domain.Product, created bool) string {
	verb := "Updated"
	if created {
		verb = "Created"
	}
	return fmt.Sprintf("  %s product %d (%s) at $%.2f\n",
		okStyle.Render(verb), p.ID, p.Name, p.UnitPrice)
}
