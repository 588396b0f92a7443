package main

import (
	"fmt"
	"os"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/calendar"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/conf"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/db"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/normalize"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/plot"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/query"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/utils/errutil"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/utils/uuid"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	precisionFlag   = conf.NewIntFlag("precision", "Number of decimal places of printed numbers", visualization.DefaultPrecision)
	dpiFlag         = conf.NewFloatFlag("dpi", "Resolution of saved plots", plot.DefaultStyle().DPI)
	legendFrameFlag = conf.NewBoolFlag("legend_frame", "Draw frame around plot legends", true)
	categoriesFlag  = conf.NewSliceFlag("categories", "Vehicle makes normalized by compare, comma separated (default: ford,toyota)")

	queryCmd = conf.Command("query", "Run a query and print results as a table")
	querySQL = queryCmd.Arg("sql", "Query to run").Required().String()
	queryRaw = queryCmd.Flag("raw", "Skip column names and date parsing").Bool()

	datesCmd = conf.Command("dates", "Print date columns detected in a query")
	datesSQL = datesCmd.Arg("sql", "Query to inspect").Required().String()

	doyCmd        = conf.Command("doy", "Plot number of crashes per day of year")
	doySQL        = doyCmd.Arg("sql", "Query returning one row per crash").Required().String()
	doyDateColumn = doyCmd.Flag("date_column", "Column with crash date").Default("collision_date").String()
	doyTitle      = doyCmd.Flag("title", "Plot title").Default("Crashes by Day of Year").String()
	doyOut        = doyCmd.Flag("out", "Output PNG file").String()
	doyAnnotate   = doyCmd.Flag("annotate", "Annotation in MM-DD=text or MM-DD:dx,dy=text format, repeatable").Strings()

	compareCmd        = conf.Command("compare", "Plot Ford and Toyota totals around the stay-at-home order")
	compareSQL        = compareCmd.Arg("sql", "Query returning vehicle_make, collision_date and total columns").Required().String()
	compareNormalize  = compareCmd.Flag("normalize", "Divide totals by the mean of the first half of 2019").Bool()
	compareTitle      = compareCmd.Flag("title", "Plot title").Default("Crashes by Vehicle Make").String()
	compareOut        = compareCmd.Flag("out", "Output PNG file").String()
	compareToyotaDate = compareCmd.Flag("toyota_label_date", "Date (YYYY-MM-DD) of Toyota label").String()
	compareToyotaY    = compareCmd.Flag("toyota_label_y", "Y position of Toyota label").Default("0").Float64()
	compareFordDate   = compareCmd.Flag("ford_label_date", "Date (YYYY-MM-DD) of Ford label").String()
	compareFordY      = compareCmd.Flag("ford_label_y", "Y position of Ford label").Default("0").Float64()
	comparePolicyDate = compareCmd.Flag("policy_label_date", "Date (YYYY-MM-DD) of stay-at-home order label").String()
	comparePolicyY    = compareCmd.Flag("policy_label_y", "Y position of stay-at-home order label").Default("0").Float64()
	compareNormY      = compareCmd.Flag("norm_label_y", "Y position of normalization window label").Default("1.1").Float64()
	compareYMin       = compareCmd.Flag("ylim_bottom", "Bottom of y axis").Default("0").Float64()
	compareYMax       = compareCmd.Flag("ylim_top", "Top of y axis, ignored unless above bottom").Default("0").Float64()

	configCmd = conf.Command("config", "Dump current configuration in environment format")
)

func main() {
	conf.SetAppName("collisions")
	conf.SetHelp("Exploratory analysis of vehicle collision records.")
	command, err := conf.ParseCommand(os.Args[1:])
	errutil.Check(err)
	logrus.SetLevel(conf.LogLevel())

	errutil.Check(run(command))
}

// run executes the command. Resources are released before it returns, so callers may exit on error.
func run(command string) error {
	switch command {
	case configCmd.FullCommand():
		fmt.Println(conf.DumpConfig())
		return nil
	case datesCmd.FullCommand():
		visualization.NewList(query.DateColumns(*datesSQL), "Date column: ").Print(os.Stdout)
		return nil
	}

	connection, err := db.Open(db.ConfigFromFlags())
	if err != nil {
		return errors.Wrap(err, "cannot open database")
	}
	defer func() {
		if err := connection.Close(); err != nil {
			logrus.Warnf("closing database connection failed: %v", err)
		}
	}()
	cursor := connection.Cursor()

	switch command {
	case queryCmd.FullCommand():
		return runQuery(cursor)
	case doyCmd.FullCommand():
		return runDayOfYear(cursor)
	case compareCmd.FullCommand():
		return runComparison(cursor)
	}
	return errors.Errorf("unknown command %q", command)
}

func figureStyle() plot.Style {
	style := plot.DefaultStyle()
	style.DPI = dpiFlag.Value()
	style.Legend.Frame = legendFrameFlag.Value()
	return style
}

func outputPath(path, prefix string) string {
	if path != "" {
		return path
	}
	return fmt.Sprintf("%s-%s.png", prefix, uuid.Short())
}

func runQuery(cursor query.Cursor) error {
	load := query.LoadWithDates
	if *queryRaw {
		load = func(c query.Cursor, q string) (*frame.Frame, error) { return query.Load(c, q, false) }
	}
	f, err := load(cursor, *querySQL)
	if err != nil {
		return err
	}
	fmt.Println(visualization.NewQueryMetadata(*querySQL, f))
	visualization.FromFrame(f, int32(precisionFlag.Value())).Draw(os.Stdout)
	return nil
}

func runDayOfYear(cursor query.Cursor) error {
	annotations, err := parseAnnotations(*doyAnnotate)
	if err != nil {
		return err
	}

	f, err := query.LoadWithDates(cursor, *doySQL)
	if err != nil {
		return err
	}
	series, err := calendar.CountByDay(f, *doyDateColumn, "Crashes")
	if err != nil {
		return err
	}

	fig := plot.NewFigure(figureStyle(), plot.Labels{Title: *doyTitle, YLabel: "Crashes"})
	if err := plot.PlotDailySeries(fig, series, plot.Blue); err != nil {
		return err
	}
	fig.RemoveLegend()
	for _, a := range annotations {
		if err := plot.AnnotateYear(fig, series, a.day.Month, a.day.Day, a.text, a.offset, plot.Point{}); err != nil {
			logrus.Warnf("skipping annotation %q: %v", a.text, err)
		}
	}

	out := outputPath(*doyOut, "doy")
	if err := fig.Save(out); err != nil {
		return err
	}
	logrus.Infof("day of year plot of %d days saved to %s", series.Len(), out)
	return nil
}

func runComparison(cursor query.Cursor) error {
	config := plot.DefaultComparisonConfig()
	f, err := query.LoadWithDates(cursor, *compareSQL)
	if err != nil {
		return err
	}

	ylabel := "Crashes"
	if *compareNormalize {
		if err := f.SetIndex(config.DateColumn); err != nil {
			return err
		}
		normConfig := normalize.DefaultConfig()
		normConfig.FactorColumn = config.FactorColumn
		normConfig.ValueColumn = config.ValueColumn
		if categories := categoriesFlag.Value(); len(categories) > 0 {
			normConfig.Categories = categories
		}
		if f, err = normalize.Normalize(f, normConfig); err != nil {
			return err
		}
		config.NormLabelY = compareNormY
		ylabel = "Normalized crashes"
	}

	labels := labelFlags{
		toyota: labelFlag{date: *compareToyotaDate, y: *compareToyotaY},
		ford:   labelFlag{date: *compareFordDate, y: *compareFordY},
		policy: labelFlag{date: *comparePolicyDate, y: *comparePolicyY},
	}
	if err := labels.apply(&config); err != nil {
		return err
	}
	if *compareYMax > *compareYMin {
		config.YLimits = &[2]float64{*compareYMin, *compareYMax}
	}

	fig := plot.NewFigure(figureStyle(), plot.Labels{Title: *compareTitle, YLabel: ylabel})
	if err := plot.PlotComparison(fig, f, config); err != nil {
		return err
	}

	out := outputPath(*compareOut, "compare")
	if err := fig.Save(out); err != nil {
		return err
	}
	logrus.Infof("comparison plot saved to %s", out)
	return nil
}
