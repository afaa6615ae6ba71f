package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/delaneyj/fetchparty/loadable"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	subCounts = []int{1, 10, 100, 1_000}
	iters     = 100
)

func main() {
	flag.Parse()

	benchmarkSetValue()
	benchmarkRefresh()
}

func benchmarkSetValue() {
	tbl := table.NewWriter()
	tbl.SetTitle("Loadable fan-out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, subs := range subCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		state := loadable.New(loadable.WithEqual(loadable.ComparableEqual[int]))
		sink := 0
		for i := 0; i < subs; i++ {
			state.Subscribe(func() {
				sink++
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			state.SetValue(i + 1)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("set value: %s subs", humanize.Comma(int64(subs))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	tbl.Render()
}

func benchmarkRefresh() {
	tbl := table.NewWriter()
	tbl.SetTitle("Loadable refresh cycle")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	ctx := context.Background()
	for _, subs := range subCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		state := loadable.New(loadable.WithEqual(loadable.ComparableEqual[int]))
		sink := 0
		for i := 0; i < subs; i++ {
			state.Subscribe(func() {
				sink++
			})
		}

		for i := 0; i < iters; i++ {
			next := i + 1
			start := time.Now()
			state.Refresh(ctx, func(context.Context) (int, error) {
				return next, nil
			})
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("refresh: %s subs", humanize.Comma(int64(subs))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	tbl.Render()
}
