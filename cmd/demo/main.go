package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/fetchparty/loadable"
	"github.com/delaneyj/fetchparty/render"
	"github.com/delaneyj/fetchparty/rendertty"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

const (
	itemsKey     = "items"
	latencyKey   = "latency"
	failEveryKey = "fail-every"
	cyclesKey    = "cycles"
)

func main() {
	cmd := &cli.Command{
		Name:  "demo",
		Usage: "Drive a feed through fetch lifecycles and render each frame",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itemsKey,
				Usage: "Articles per successful fetch",
				Value: 12,
			},
			&cli.DurationFlag{
				Name:  latencyKey,
				Usage: "Simulated fetch latency",
				Value: 150 * time.Millisecond,
			},
			&cli.UintFlag{
				Name:  failEveryKey,
				Usage: "Fail every Nth fetch, 0 to never fail",
				Value: 3,
			},
			&cli.UintFlag{
				Name:  cyclesKey,
				Usage: "Number of refresh cycles to run",
				Value: 5,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type article struct {
	title    string
	size     uint64
	comments int64
}

func run(ctx context.Context, cmd *cli.Command) error {
	items := int(cmd.Uint(itemsKey))
	latency := cmd.Duration(latencyKey)
	failEvery := int(cmd.Uint(failEveryKey))
	cycles := int(cmd.Uint(cyclesKey))

	rendertty.Install(render.Default())

	feed := loadable.New[[]article]()

	var lastFrame uint64
	redraw := func() {
		frame := frameFor(feed)
		fp, err := render.Fingerprint(frame)
		if err != nil {
			log.Fatal(err)
		}
		if fp == lastFrame {
			return
		}
		lastFrame = fp
		if err := frame.Render(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
	stop := feed.Subscribe(redraw)
	defer stop()
	redraw()

	for cycle := 1; cycle <= cycles; cycle++ {
		feed.Refresh(ctx, func(ctx context.Context) ([]article, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(latency):
			}
			if failEvery > 0 && cycle%failEvery == 0 {
				return nil, fmt.Errorf("fetch %d: upstream unavailable", cycle)
			}
			return makeArticles(items, cycle), nil
		})
	}
	return nil
}

func frameFor(feed *loadable.Loadable[[]article]) render.Renderable {
	return render.ResolveList(feed, render.ListBranches[article]{
		Branches: render.Branches[[]article]{
			Success: func(articles []article) render.Renderable {
				rows := make([][]string, len(articles))
				for i, a := range articles {
					rows[i] = []string{
						a.title,
						humanize.Bytes(a.size),
						humanize.Comma(a.comments),
					}
				}
				return rendertty.Table([]string{"title", "size", "comments"}, rows...)
			},
		},
		EmptyListMessage: "feed has no articles",
	})
}

func makeArticles(n, cycle int) []article {
	articles := make([]article, n)
	for i := range articles {
		articles[i] = article{
			title:    fmt.Sprintf("article %d.%d", cycle, i+1),
			size:     uint64((i + 1) * 1536),
			comments: int64(cycle * (i + 3)),
		}
	}
	return articles
}
