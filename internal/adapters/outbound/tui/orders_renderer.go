package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// RenderOrders renders the order list view: stat cards, then the table.
func RenderOrders(orders []domain.Order, stats domain.OrdersStats) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("orderdesk") + "  " + dimStyle.Render("Orders") + "\n\n")

	b.WriteString(statRow(
		statBox("Total Orders", strconv.Itoa(stats.Count)),
		statBox("Revenue", "$"+stats.Revenue.StringFixed(2)),
		statBox("Pending", strconv.Itoa(stats.PendingCount)),
		statBox("Avg. Value", "$"+stats.AvgValue.StringFixed(2)),
	))
	b.WriteString("\n\n")

	if len(orders) == 0 {
		b.WriteString("  " + dimStyle.Render("No orders found.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %s %s %s %s\n",
		columnStyle.Render(padRight("ID", 6)),
		columnStyle.Render(padRight("NUMBER", 14)),
		columnStyle.Render(padRight("DATE", 12)),
		columnStyle.Render(padRight("ITEMS", 6)),
		columnStyle.Render(padRight("TOTAL", 12)),
		columnStyle.Render("STATUS"),
	)
	b.WriteString("  " + separatorLine + "\n")

	for _, o := range orders {
		fmt.Fprintf(&b, "  %s %s %s %s %s %s\n",
			padRight(strconv.Itoa(o.ID), 6),
			titleStyle.Render(padRight(o.OrderNumber, 14)),
			dimStyle.Render(padRight(o.OrderDate, 12)),
			padRight(strconv.Itoa(o.TotalProducts), 6),
			padRight(money(o.FinalPrice), 12),
			statusStyled(o.Status),
		)
	}
	return b.String()
}

// RenderOrderDetail renders one order header with its line items.
func RenderOrderDetail(order domain.Order, items []domain.OrderItem) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("Order "+order.OrderNumber) + "  " + statusStyled(order.Status) + "\n")
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(fmt.Sprintf("id %d · %s", order.ID, order.OrderDate)))

	if len(items) == 0 {
		b.WriteString("  " + dimStyle.Render("No line items.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %s %s\n",
		columnStyle.Render(padRight("PRODUCT", 24)),
		columnStyle.Render(padRight("QTY", 5)),
		columnStyle.Render(padRight("UNIT", 10)),
		columnStyle.Render("SUBTOTAL"),
	)
	b.WriteString("  " + separatorLine + "\n")

	for _, item := range items {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			titleStyle.Render(padRight(item.ProductName, 24)),
			padRight(strconv.Itoa(item.Qty), 5),
			padRight(fmt.Sprintf("$%.2f", item.UnitPrice), 10),
			"$"+item.Subtotal().StringFixed(2),
		)
	}

	totals := domain.ComputeTotals(items)
	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s   %s %s\n",
		dimStyle.Render("items:"), valueStyle.Render(strconv.Itoa(totals.TotalProducts)),
		dimStyle.Render("total:"), valueStyle.Render("$"+totals.FinalPrice.StringFixed(2)),
	)
	return b.String()
}

// RenderSaveResult confirms a fully persisted order.
func RenderSaveResult(order domain.Order, lineCount int) string {
	return fmt.Sprintf("  %s order %d (%s) with %d line(s), total %s\n",
		okStyle.Render("Saved"), order.ID, order.OrderNumber, lineCount, money(order.FinalPrice))
}

// RenderPartialSave reports a save whose header persisted but some lines
// failed, naming each failed line so operators can reconcile.
func RenderPartialSave(err *domain.PartialSaveError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s order %d: header saved, %d line(s) failed\n",
		failStyle.Render("Partial save"), err.OrderID, len(err.Failures))
	for _, id := range err.FailedProductIDs() {
		fmt.Fprintf(&b, "    %s product %d\n", failStyle.Render("✗"), id)
	}
	return b.String()
}

// RenderStatusChange reports a persisted status transition.
func RenderStatusChange(id int, prev, next domain.Status) string {
	return fmt.Sprintf("  Order %d: %s %s %s\n",
		id, statusStyled(prev), dimStyle.Render("→"), statusStyled(next))
}
