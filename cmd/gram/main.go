package main

import (
	"context"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/gram/cmds"
	"github.com/reusee/gram/debugs"
	"github.com/reusee/gram/gramconfigs"
	"github.com/reusee/gram/gramlang"
	"github.com/reusee/gram/logs"
	"github.com/reusee/gram/modes"
	"github.com/reusee/gram/syncs"
	"golang.org/x/term"
)

var tapFlag = cmds.Switch("-tap")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		tap debugs.Tap,
		trace gramconfigs.TraceParse,
		maxErrors gramconfigs.MaxErrors,
	) {
		ctx, _ := newSpan(ctx, "")

		grammar := gramlang.Default()

		sources := make([]*gramlang.Source, 0, len(files)+1)
		for _, path := range files {
			content, err := os.ReadFile(path)
			ce(err)
			sources = append(sources, gramlang.NewSource(path, string(content)))
		}
		if stdin := getStdinContent(); len(stdin) > 0 {
			sources = append(sources, gramlang.NewSource("stdin", string(stdin)))
		}
		if len(sources) == 0 {
			logger.InfoContext(ctx, "nothing to parse")
			return
		}

		type result struct {
			source *gramlang.Source
			nodes  []gramlang.Node
			err    error
		}
		results := make([]result, len(sources))

		// Each source gets its own tokenizer and stream; a stream is never
		// shared across goroutines.
		sem := syncs.NewSemaphore(runtime.GOMAXPROCS(0))
		var wg sync.WaitGroup
		for i, src := range sources {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()
				nodes, err := grammar.ParseSource(src)
				results[i] = result{
					source: src,
					nodes:  nodes,
					err:    err,
				}
			}()
		}
		wg.Wait()

		numErrors := 0
		var allNodes []gramlang.Node
		for _, res := range results {
			if res.err != nil {
				numErrors++
				os.Stderr.WriteString(logs.WrapSpan(ctx, res.err).Error())
				os.Stderr.WriteString("\n")
				if numErrors >= int(maxErrors) {
					break
				}
				continue
			}
			logger.InfoContext(ctx, "parsed",
				"source", res.source.Name,
				"nodes", len(res.nodes),
			)
			if trace {
				for _, node := range res.nodes {
					logger.InfoContext(ctx, "node",
						"type", node.Type(),
						"line", node.Pos().Line,
						"column", node.Pos().Column,
					)
				}
			}
			allNodes = append(allNodes, res.nodes...)
		}

		if *tapFlag {
			tap(ctx, "parse results", map[string]any{
				"nodes": allNodes,
			})
		}

		if numErrors > 0 {
			os.Exit(1)
		}
	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
