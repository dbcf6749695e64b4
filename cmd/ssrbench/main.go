// Command ssrbench renders a generated sample tree N times and reports
// chunk counts and throughput. It is a measurement harness, not a load
// generator; there is no network protocol in scope to drive from the
// outside.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/streamvdom/ssrender/render"
	"github.com/streamvdom/ssrender/vnode"
)

func main() {
	var (
		iterations int
		depth      int
		width      int
		xml        bool
	)

	rootCmd := &cobra.Command{
		Use:   "ssrbench",
		Short: "Benchmark the streaming server-side renderer",
		Long: `ssrbench renders a synthetic tree of nested elements and
functional components repeatedly, reporting wall-clock throughput and the
number of stream chunks produced per render.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := buildTree(depth, width)
			opts := render.Options{XML: xml}

			chunks, err := render.RenderChunks(tree, nil, opts)
			if err != nil {
				return fmt.Errorf("warm-up render: %w", err)
			}
			fmt.Printf("tree depth=%d width=%d -> %d chunks per render\n", depth, width, len(chunks))

			start := time.Now()
			var totalBytes int64
			for i := 0; i < iterations; i++ {
				out, err := render.RenderToString(tree, nil, opts)
				if err != nil {
					return fmt.Errorf("iteration %d: %w", i, err)
				}
				totalBytes += int64(len(out))
			}
			elapsed := time.Since(start)

			fmt.Printf("iterations=%d elapsed=%s avg=%s throughput=%.0f renders/s bytes=%d\n",
				iterations, elapsed, elapsed/time.Duration(iterations),
				float64(iterations)/elapsed.Seconds(), totalBytes)
			return nil
		},
	}

	rootCmd.Flags().IntVar(&iterations, "iterations", 1000, "number of renders to time")
	rootCmd.Flags().IntVar(&depth, "depth", 4, "nesting depth of the generated tree")
	rootCmd.Flags().IntVar(&width, "width", 3, "sibling count at each level")
	rootCmd.Flags().BoolVar(&xml, "xml", false, "render in XML mode")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ssrbench version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ssrbench dev")
		},
	}
}

// buildTree constructs a synthetic tree: each level is a functional
// component wrapping "width" child <div> elements, recursing to "depth"
// levels.
func buildTree(depth, width int) *vnode.VNode {
	return buildLevel(0, depth, width)
}

func buildLevel(level, depth, width int) *vnode.VNode {
	row := &vnode.Func{
		Name: "Row" + strconv.Itoa(level),
		Render: func(props vnode.Props, ctx vnode.Context) any {
			children := make([]any, 0, width)
			for i := 0; i < width; i++ {
				var child any
				if level+1 < depth {
					child = buildLevel(level+1, depth, width)
				} else {
					child = "leaf"
				}
				children = append(children, &vnode.VNode{
					NodeName:   "div",
					Attributes: map[string]any{"data-i": i},
					Children:   []any{child},
				})
			}
			return &vnode.VNode{NodeName: "section", Children: children}
		},
	}
	return &vnode.VNode{NodeName: row}
}
