package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmflow/farmdash/internal/dashboard"
	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/view"
)

const (
	defaultWidth = 80
	minBarWidth  = 10
	maxBarWidth  = 40
)

// Renderer draws pages with one set of styles.
type Renderer struct {
	Styles   Styles
	Width    int
	Currency string

	progress progress.Model
}

// NewRenderer returns a renderer. A non-positive width falls back to 80
// columns.
func NewRenderer(styles Styles, width int, currency string) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}

	return &Renderer{
		Styles:   styles,
		Width:    width,
		Currency: currency,
		progress: styles.Progress(min(max(width/3, minBarWidth), maxBarWidth)),
	}
}

func (r *Renderer) money(v float64) string { return Money(r.Currency, v) }

// bar draws value/limit clamped to [0, 1]. A non-positive limit draws an
// empty bar.
func (r *Renderer) bar(value, limit float64) string {
	var ratio float64
	if limit > 0 {
		ratio = math.Min(math.Max(value/limit, 0), 1)
	}

	return r.progress.ViewAs(ratio)
}

func (r *Renderer) header(title, subtitle string) string {
	var sb strings.Builder

	sb.WriteString(r.Styles.Title.Render(title))
	sb.WriteString("\n")

	if subtitle != "" {
		sb.WriteString(r.Styles.Subtitle.Render(subtitle))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	return sb.String()
}

// Cards lays out label/value stat cards side by side, wrapping rows to the
// renderer width.
func (r *Renderer) Cards(cards ...[2]string) string {
	var (
		rows  []string
		row   []string
		width int
	)

	for _, c := range cards {
		card := r.Styles.Card.Render(
			r.Styles.CardLabel.Render(c[0]) + "\n" + r.Styles.CardValue.Render(c[1]),
		)

		w := lipgloss.Width(card)
		if len(row) > 0 && width+w > r.Width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, width = nil, 0
		}

		row = append(row, card)
		width += w
	}

	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func summaryCards[K ~string](s view.Summary[K], keys []K) [][2]string {
	cards := make([][2]string, 0, len(keys)+1)
	cards = append(cards, [2]string{"Total", strconv.Itoa(s.Total)})

	for _, k := range keys {
		cards = append(cards, [2]string{titleCase(string(k)), strconv.Itoa(s.Count(k))})
	}

	return cards
}

// filterLine describes the active filters. Each filter is a name/value
// pair; empty values are skipped.
func filterLine(search string, filters ...[2]string) string {
	var parts []string

	if search != "" {
		parts = append(parts, fmt.Sprintf("search %q", search))
	}

	for _, f := range filters {
		if f[1] != "" {
			parts = append(parts, strings.TrimSpace(f[0]+" "+f[1]))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return "Filtered by " + strings.Join(parts, ", ")
}

// Tasks renders the tasks page.
func (r *Renderer) Tasks(p dashboard.TasksPage) string {
	var sb strings.Builder

	sb.WriteString(r.header("Tasks", "Manage and track farm tasks"))
	sb.WriteString(r.Cards(summaryCards(p.Summary, farm.TaskStatuses)...))
	sb.WriteString("\n")

	t := NewTable(filterLine(p.Search,
		[2]string{"status", string(p.Status)},
		[2]string{"priority", string(p.Priority)}),
		"Task", "Priority", "Status", "Due", "Assignee", "Location")
	for _, task := range p.Visible {
		t.AddRow(task.Title, string(task.Priority), string(task.Status), task.DueDate, task.Assignee, task.Location)
	}

	sb.WriteString(t.View(r.Styles, "No tasks match."))

	return sb.String()
}

// Crops renders the crops page.
func (r *Renderer) Crops(p dashboard.CropsPage) string {
	var sb strings.Builder

	sb.WriteString(r.header("Crops", "Monitor crop health and growth progress"))

	cards := summaryCards(p.Summary, farm.CropHealths)
	cards = append(cards,
		[2]string{"Area", Number(p.TotalAcres) + " acres"},
		[2]string{"Avg progress", Pct(p.MeanProgress)},
		[2]string{"Need water", strconv.Itoa(p.Irrigation.Count(farm.IrrigationNeedsWater))},
	)
	sb.WriteString(r.Cards(cards...))
	sb.WriteString("\n")

	t := NewTable(filterLine(p.Search, [2]string{"health", string(p.Health)}),
		"Crop", "Field", "Acres", "Stage", "Progress", "Health", "Irrigation")
	for _, c := range p.Visible {
		growth := r.bar(float64(c.Progress), 100) + " " + strconv.Itoa(c.Progress) + "%"
		t.AddRow(c.Name+" ("+c.Variety+")", c.Field, Number(c.AreaAcres), c.Stage,
			growth, string(c.Health), string(c.Irrigation))
	}

	sb.WriteString(t.View(r.Styles, "No crops match."))

	return sb.String()
}

// Livestock renders the livestock page.
func (r *Renderer) Livestock(p dashboard.LivestockPage) string {
	var sb strings.Builder

	sb.WriteString(r.header("Livestock", "Track animal health and records"))
	sb.WriteString(r.Cards(summaryCards(p.Summary, farm.AnimalHealths)...))
	sb.WriteString("\n")

	t := NewTable(filterLine(p.Search,
		[2]string{"health", string(p.Health)},
		[2]string{"type", p.Type}),
		"Tag", "Type", "Breed", "Age", "Weight", "Health", "Next vaccination", "Location")
	for _, a := range p.Visible {
		t.AddRow(a.Tag, a.Type, a.Breed, a.Age, a.Weight, r.animalHealth(a.Health), a.NextVaccination, a.Location)
	}

	sb.WriteString(t.View(r.Styles, "No animals match."))

	return sb.String()
}

func (r *Renderer) animalHealth(h farm.AnimalHealth) string {
	switch h {
	case farm.AnimalSick:
		return r.Styles.Error.Render(string(h))
	case farm.AnimalNeedsAttention:
		return r.Styles.Warning.Render(string(h))
	default:
		return r.Styles.Success.Render(string(h))
	}
}

// Inventory renders the inventory page.
func (r *Renderer) Inventory(p dashboard.InventoryPage) string {
	var sb strings.Builder

	sb.WriteString(r.header("Inventory", "Manage farm supplies and equipment"))

	cards := summaryCards(p.Summary, farm.StockLevels)
	cards = append(cards, [2]string{"Need restock", strconv.Itoa(p.Restock)})
	sb.WriteString(r.Cards(cards...))
	sb.WriteString("\n")

	var lowStock string
	if p.LowStock {
		lowStock = "needing restock"
	}

	t := NewTable(filterLine(p.Search,
		[2]string{"category", string(p.Category)},
		[2]string{"", lowStock}),
		"Item", "Category", "Quantity", "Stock", "Level", "Location")
	for _, item := range p.Visible {
		fill := item.FillPercent()
		bar := r.bar(fill.Value, 100) + " " + Pct(fill)
		t.AddRow(item.Name, string(item.Category), Number(item.Quantity)+" "+item.Unit,
			bar, r.stockLevel(item.Level()), item.Location)
	}

	sb.WriteString(t.View(r.Styles, "No items match."))

	return sb.String()
}

func (r *Renderer) stockLevel(l farm.StockLevel) string {
	switch l {
	case farm.OutOfStock:
		return r.Styles.Error.Render(string(l))
	case farm.LowStock:
		return r.Styles.Warning.Render(string(l))
	default:
		return r.Styles.Success.Render(string(l))
	}
}

// Finance renders the finance page.
func (r *Renderer) Finance(p dashboard.FinancePage) string {
	var sb strings.Builder

	sb.WriteString(r.header("Finance", "Track revenue, expenses and profitability"))
	sb.WriteString(r.Cards(
		[2]string{"Total revenue", r.money(p.Summary.TotalRevenue)},
		[2]string{"Total expenses", r.money(p.Summary.TotalExpenses)},
		[2]string{"Net profit", r.money(p.Summary.NetProfit)},
		[2]string{"Profit margin", Pct(p.Summary.ProfitMargin)},
		[2]string{"Last month", Change(p.RevenueChange)},
	))
	sb.WriteString("\n")

	var peak float64
	for _, m := range p.Months {
		peak = max(peak, m.Revenue, m.Expenses)
	}

	months := NewTable("Revenue vs expenses", "Month", "Revenue", "", "Expenses")
	for _, m := range p.Months {
		months.AddRow(m.Month, r.money(m.Revenue),
			r.bar(m.Revenue, peak), r.money(m.Expenses))
	}

	sb.WriteString(months.View(r.Styles, "No monthly data."))
	sb.WriteString("\n")

	title := filterLine(p.Search,
		[2]string{"type", string(p.Type)},
		[2]string{"category", p.Category})
	if title == "" {
		title = "Recent transactions"
	}

	t := NewTable(title, "Date", "Description", "Category", "Amount")
	for _, tx := range p.Visible {
		amount := r.money(tx.Amount)
		if tx.Type == farm.Expense {
			amount = r.Styles.Error.Render("-" + amount)
		} else {
			amount = r.Styles.Success.Render("+" + amount)
		}

		t.AddRow(tx.Date, tx.Description, tx.Category, amount)
	}

	sb.WriteString(t.View(r.Styles, "No transactions match."))
	sb.WriteString(r.Styles.Muted.Render(fmt.Sprintf("Income %s · Expenses %s · Net %s",
		r.money(p.Totals.Income), r.money(p.Totals.Expenses), r.money(p.Totals.Net))))
	sb.WriteString("\n")

	return sb.String()
}

// Analytics renders the analytics page.
func (r *Renderer) Analytics(p dashboard.AnalyticsPage) string {
	var sb strings.Builder

	sb.WriteString(r.header("Analytics", "Insights into farm performance"))
	sb.WriteString(r.Cards(
		[2]string{"Crops on target", fmt.Sprintf("%d/%d", p.OnTarget, len(p.Yields))},
		[2]string{"Total head", strconv.Itoa(p.HerdTotal)},
		[2]string{"Crop productivity", Pct(p.MeanCrops)},
		[2]string{"Livestock productivity", Pct(p.MeanLivestock)},
	))
	sb.WriteString("\n")

	yields := NewTable("Yield vs target (t/acre)", "Crop", "Yield", "Target", "Variance")
	for _, y := range p.Yields {
		variance := strconv.FormatFloat(y.Variance(), 'f', 2, 64)
		if y.OnTarget() {
			variance = r.Styles.Success.Render("+" + variance)
		} else {
			variance = r.Styles.Warning.Render(variance)
		}

		yields.AddRow(y.Crop, Number(y.Yield), Number(y.Target), variance)
	}

	sb.WriteString(yields.View(r.Styles, "No yield data."))
	sb.WriteString("\n")

	herd := NewTable("Herd composition", "Species", "Head", "Share")
	for _, h := range p.Herd {
		herd.AddRow(h.Name, strconv.Itoa(h.Head),
			r.bar(h.Share.Value, 100)+" "+Pct(h.Share))
	}

	sb.WriteString(herd.View(r.Styles, "No herd data."))
	sb.WriteString("\n")

	prod := NewTable("Productivity", "Month", "Crops", "Livestock")
	for _, m := range p.Productivity {
		prod.AddRow(m.Month, Number(m.Crops), Number(m.Livestock))
	}

	sb.WriteString(prod.View(r.Styles, "No productivity data."))
	sb.WriteString("\n")

	res := NewTable("Resource usage", "Resource", "Usage")
	for _, u := range p.Resources {
		res.AddRow(u.Resource, r.bar(u.Usage, 100)+" "+Number(u.Usage)+"%")
	}

	sb.WriteString(res.View(r.Styles, "No resource data."))

	return sb.String()
}

// Overview renders the overview page.
func (r *Renderer) Overview(p dashboard.OverviewPage, farmName string) string {
	var sb strings.Builder

	sb.WriteString(r.header(farmName, "Farm overview"))

	inventory := strconv.Itoa(p.Inventory)
	if p.Restock > 0 {
		inventory += fmt.Sprintf(" (%d low)", p.Restock)
	}

	sb.WriteString(r.Cards(
		[2]string{"Active crops", strconv.Itoa(p.Crops)},
		[2]string{"Livestock", strconv.Itoa(p.Animals)},
		[2]string{"Inventory items", inventory},
		[2]string{"Monthly revenue", r.money(p.Revenue) + " " + Change(p.RevenueChange)},
	))
	sb.WriteString("\n")

	tasks := NewTable("Upcoming tasks", "Task", "Priority", "Due", "Assignee")
	for _, t := range p.Upcoming {
		tasks.AddRow(t.Title, string(t.Priority), t.DueDate, t.Assignee)
	}

	sb.WriteString(tasks.View(r.Styles, "Nothing scheduled."))
	sb.WriteString("\n")

	crops := NewTable("Crop progress", "Crop", "Progress")
	for _, c := range p.CropProgress {
		crops.AddRow(c.Name, r.bar(float64(c.Progress), 100)+" "+strconv.Itoa(c.Progress)+"%")
	}

	sb.WriteString(crops.View(r.Styles, "No crops planted."))
	sb.WriteString("\n")

	activity := NewTable("Recent activity", "When", "Activity", "Details")
	for _, a := range p.Activities {
		activity.AddRow(a.Time, a.Title, a.Description)
	}

	sb.WriteString(activity.View(r.Styles, "No recent activity."))
	sb.WriteString("\n")

	w := p.Weather
	sb.WriteString(r.Styles.Title.Render("Weather"))
	sb.WriteString("\n")
	sb.WriteString(r.Styles.Body.Render(fmt.Sprintf("%s: %s, %s°C, humidity %s%%, wind %s km/h, rain %s mm",
		w.Location, w.Condition, Number(w.TemperatureC), Number(w.Humidity), Number(w.WindKph), Number(w.RainfallMM))))
	sb.WriteString("\n")

	return sb.String()
}

// KeyValues renders a titled list of label/value pairs with aligned values.
func (r *Renderer) KeyValues(title string, pairs [][2]string) string {
	var sb strings.Builder

	sb.WriteString(r.Styles.Title.Render(title))
	sb.WriteString("\n")

	width := 0
	for _, kv := range pairs {
		width = max(width, lipgloss.Width(kv[0]))
	}

	label := r.Styles.Muted.Width(width + 2)
	for _, kv := range pairs {
		sb.WriteString(label.Render(kv[0]))
		sb.WriteString(r.Styles.Body.Render(kv[1]))
		sb.WriteString("\n")
	}

	return sb.String()
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}

	return strings.Join(words, " ")
}
