package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/farmflow/farmdash/internal/config"
	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/render"
)

// app carries what every command needs. The dataset is loaded on first use
// and kept for the rest of the invocation, so a shell session reads the
// data file once.
type app struct {
	cfg *config.Config
	env map[string]string
	log *zap.Logger
	in  io.Reader

	data *farm.Dataset
}

func (a *app) dataset() (farm.Dataset, error) {
	if a.data != nil {
		return *a.data, nil
	}

	var ds farm.Dataset

	if a.cfg.DataFileAbs == "" {
		ds = farm.SampleDataset()
		a.log.Debug("using built-in sample dataset")
	} else {
		var err error

		ds, err = farm.LoadDataset(a.cfg.DataFileAbs)
		if err != nil {
			return farm.Dataset{}, err
		}

		a.log.Debug("dataset loaded", zap.String("path", a.cfg.DataFileAbs))
	}

	a.log.Debug("dataset sizes",
		zap.Int("tasks", len(ds.Tasks)),
		zap.Int("crops", len(ds.Crops)),
		zap.Int("animals", len(ds.Animals)),
		zap.Int("inventory", len(ds.Inventory)),
		zap.Int("transactions", len(ds.Transactions)),
		zap.Int("months", len(ds.Months)),
	)

	a.data = &ds

	return ds, nil
}

type fder interface {
	Fd() uintptr
}

// renderer builds a renderer for o's stdout: colors and width follow the
// terminal when stdout is one.
func (a *app) renderer(o *IO) *render.Renderer {
	theme := render.ThemeFor(a.cfg.Theme, a.env["COLORFGBG"])
	styles := render.NewStyles(o.Out(), theme)

	width := 0
	if f, ok := o.Out().(fder); ok {
		width, _ = render.TerminalWidth(f.Fd())
	}

	return render.NewRenderer(styles, width, a.cfg.Currency)
}

func noArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, args)
	}

	return nil
}
