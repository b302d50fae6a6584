package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/farmflow/farmdash/internal/dashboard"
	"github.com/farmflow/farmdash/internal/farm"
)

// page is one dashboard page as seen by the command line and the shell.
type page struct {
	name  string
	short string
	long  string

	// search names the fields --search matches; empty when the page has no
	// search box.
	search string

	// selector is the flag name of the page's selector, with its choices.
	selector string
	choices  []string

	// options are secondary filters ANDed with search and selector.
	options []option

	show func(a *app, o *IO, q query) error
}

// option is a secondary filter flag. Boolean options take true or false.
type option struct {
	name    string
	usage   string
	boolean bool
}

// query is the filter input of one page render. Options hold raw values by
// option name; a missing option does not narrow.
type query struct {
	search   string
	selector string
	options  map[string]string
}

func (q query) clone() query {
	opts := make(map[string]string, len(q.options))
	for k, v := range q.options {
		opts[k] = v
	}

	q.options = opts

	return q
}

func (q query) option(name string) string {
	return q.options[name]
}

func (q query) flag(name string) (bool, error) {
	raw := q.option(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w: %s (want true|false)", name, errInvalidOption, raw)
	}

	return v, nil
}

func (p page) option(name string) (option, bool) {
	for _, opt := range p.options {
		if opt.name == name {
			return opt, true
		}
	}

	return option{}, false
}

func names[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out
}

func dashboardPages() []page {
	return []page{
		{
			name:  "overview",
			short: "Show the farm overview",
			long:  "Show stat cards, upcoming tasks, crop progress, recent activity and weather.",
			show:  showOverview,
		},
		{
			name:     "tasks",
			short:    "List farm tasks",
			long:     "List tasks with counts per status. Counts always cover every task.",
			search:   "title or description",
			selector: "status",
			choices:  names(farm.TaskStatuses),
			options: []option{
				{name: "priority", usage: "Filter by priority (" + strings.Join(names(farm.Priorities), "|") + ")"},
			},
			show: showTasks,
		},
		{
			name:     "crops",
			short:    "List crops and their growth",
			long:     "List plantings with health and irrigation counts, total acreage and mean progress.",
			search:   "name or field",
			selector: "health",
			choices:  names(farm.CropHealths),
			show:     showCrops,
		},
		{
			name:     "livestock",
			short:    "List animals and their health",
			search:   "type, tag or breed",
			selector: "health",
			choices:  names(farm.AnimalHealths),
			options: []option{
				{name: "type", usage: "Show only animals of `type` (e.g. cattle)"},
			},
			show: showLivestock,
		},
		{
			name:     "inventory",
			short:    "List supplies and stock levels",
			long:     "List supplies. Stock level is derived from quantity and minimum stock.",
			search:   "name or category",
			selector: "category",
			choices:  names(farm.InventoryCategories),
			options: []option{
				{name: "low-stock", usage: "Show only items that need restocking", boolean: true},
			},
			show: showInventory,
		},
		{
			name:     "finance",
			short:    "Show revenue, expenses and transactions",
			long:     "Show the monthly revenue and expense series with totals and the transaction list.",
			search:   "description or category",
			selector: "type",
			choices:  names(farm.TransactionTypes),
			options: []option{
				{name: "category", usage: "Show only transactions in `category` (e.g. \"crop sales\")"},
			},
			show: showFinance,
		},
		{
			name:  "analytics",
			short: "Show yields, herd composition and productivity",
			show:  showAnalytics,
		},
	}
}

// pageCmd wraps a page in a command with --search, selector and option
// flags.
func pageCmd(a *app, p page) *Command {
	fs := flag.NewFlagSet(p.name, flag.ContinueOnError)

	var search, selector *string

	strOpts := make(map[string]*string)
	boolOpts := make(map[string]*bool)

	for _, opt := range p.options {
		if opt.boolean {
			boolOpts[opt.name] = fs.Bool(opt.name, false, opt.usage)
		} else {
			strOpts[opt.name] = fs.String(opt.name, "", opt.usage)
		}
	}

	usage := p.name

	if p.search != "" {
		search = fs.StringP("search", "s", "", "Show only records whose "+p.search+" contains `text`")
		usage += " [flags]"
	}

	if p.selector != "" {
		selector = fs.String(p.selector, "", fmt.Sprintf("Filter by %s (%s)", p.selector, strings.Join(p.choices, "|")))
	}

	return &Command{
		Flags: fs,
		Usage: usage,
		Short: p.short,
		Long:  p.long,
		Exec: func(_ context.Context, o *IO, args []string) error {
			err := noArgs(args)
			if err != nil {
				return err
			}

			q := query{search: deref(search), selector: deref(selector), options: make(map[string]string)}

			for name, v := range strOpts {
				if *v != "" {
					q.options[name] = *v
				}
			}

			for name, v := range boolOpts {
				if *v {
					q.options[name] = "true"
				}
			}

			return p.show(a, o, q)
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func showOverview(a *app, o *IO, _ query) error {
	ds, err := a.dataset()
	if err != nil {
		return err
	}

	p, err := dashboard.Overview(ds)
	if err != nil {
		return err
	}

	o.Printf("%s", a.renderer(o).Overview(p, a.cfg.Farm.Name))

	return nil
}

func showTasks(a *app, o *IO, q query) error {
	status, err := farm.TaskSchema.ParseSelector(q.selector)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	priority, err := farm.TaskPrioritySchema.ParseSelector(q.option("priority"))
	if err != nil {
		return fmt.Errorf("priority: %w", err)
	}

	ds, err := a.dataset()
	if err != nil {
		return err
	}

	p, err := dashboard.Tasks(ds, dashboard.TaskFilter{Search: q.search, Status: status, Priority: priority})
	if err != nil {
		return err
	}

	a.log.Debug("tasks filtered", zap.Int("visible", len(p.Visible)), zap.Int("total", p.Summary.Total))
	o.Printf("%s", a.renderer(o).Tasks(p))

	return nil
}

func showCrops(a *app, o *IO, q query) error {
	health, err := farm.CropSchema.ParseSelector(q.selector)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	ds, err := a.dataset()
	if err != nil {
		return err
	}

	p, err := dashboard.Crops(ds, dashboard.CropFilter{Search: q.search, Health: health})
	if err != nil {
		return err
	}

	a.log.Debug("crops filtered", zap.Int("visible", len(p.Visible)), zap.Int("total", p.Summary.Total))
	o.Printf("%s", a.renderer(o).Crops(p))

	return nil
}

func showLivestock(a *app, o *IO, q query) error {
	health, err := farm.AnimalSchema.ParseSelector(q.selector)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	ds, err := a.dataset()
	if err != nil {
		return err
	}

	p, err := dashboard.Livestock(ds, dashboard.LivestockFilter{Search: q.search, Health: health, Type: q.option("type")})
	if err != nil {
		return err
	}

	a.log.Debug("animals filtered", zap.Int("visible", len(p.Visible)), zap.Int("total", p.Summary.Total))
	o.Printf("%s", a.renderer(o).Livestock(p))

	return nil
}

func showInventory(a *app, o *IO, q query) error {
	category, err := farm.InventorySchema.ParseSelector(q.selector)
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}

	lowStock, err := q.flag("low-stock")
	if err != nil {
		return err
	}

	ds, err := a.dataset()
	if err != nil {
		return err
	}

	p, err := dashboard.Inventory(ds, dashboard.InventoryFilter{Search: q.search, Category: category, LowStock: lowStock})
	if err != nil {
		return err
	}

	for _, item := range p.Visible {
		if !item.FillPercent().Valid {
			o.Warn(fmt.Sprintf("item %s (%s) has no max_stock", item.ID, item.Name), "fill level shown as n/a")
		}
	}

	a.log.Debug("inventory filtered", zap.Int("visible", len(p.Visible)), zap.Int("restock", p.Restock))
	o.Printf("%s", a.renderer(o).Inventory(p))

	return nil
}

func showFinance(a *app, o *IO, q query) error {
	typ, err := farm.TransactionSchema.ParseSelector(q.selector)
	if err != nil {
		return fmt.Errorf("type: %w", err)
	}

	ds, err := a.dataset()
	if err != nil {
		return err
	}

	p, err := dashboard.Finance(ds, dashboard.FinanceFilter{Search: q.search, Type: typ, Category: q.option("category")})
	if err != nil {
		return err
	}

	if len(p.Months) > 0 && !p.Summary.ProfitMargin.Valid {
		o.Warn("total revenue is zero", "profit margin shown as n/a")
	}

	a.log.Debug("transactions filtered", zap.Int("visible", len(p.Visible)), zap.Int("total", p.Totals.Summary.Total))
	o.Printf("%s", a.renderer(o).Finance(p))

	return nil
}

func showAnalytics(a *app, o *IO, _ query) error {
	ds, err := a.dataset()
	if err != nil {
		return err
	}

	o.Printf("%s", a.renderer(o).Analytics(dashboard.Analytics(ds)))

	return nil
}
