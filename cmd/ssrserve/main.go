// Command ssrserve is a small chi-routed HTTP server that exercises
// RenderToStream against a live http.ResponseWriter, plus a WebSocket
// endpoint that pushes one frame per chunk boundary so a developer can
// watch the chunk-boundary discipline in real time. It is a demonstration
// harness, not a production server: the sample tree it renders is fixed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/streamvdom/ssrender/render"
	"github.com/streamvdom/ssrender/vnode"
)

func main() {
	addr := flag.String("addr", ":8089", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	renderer := render.NewRenderer(render.Options{}, render.WithLogger(logger))
	instr := render.NewInstrumentation(renderer)

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		stream := renderer.RenderToStream(samplePage(), nil)
		defer stream.Close()
		if _, err := io.Copy(w, stream); err != nil {
			logger.Error("stream copy failed", "error", err)
		}
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/diag", func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		chunks, err := renderer.RenderChunks(samplePage(), nil)
		if err != nil {
			conn.WriteJSON(map[string]string{"type": "error", "message": err.Error()})
			return
		}
		for i, chunk := range chunks {
			msg := map[string]any{"type": "chunk", "index": i, "data": chunk}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
		conn.WriteJSON(map[string]string{"type": "end"})
	})

	// Exercises the Instrumentation wrapper so its histogram/counters have
	// a live code path, separate from the plain Renderer used by "/".
	r.Get("/instrumented", func(w http.ResponseWriter, req *http.Request) {
		out, err := instr.RenderToString(samplePage(), nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, out)
	})

	logger.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// samplePage builds a small representative tree (a handful of elements and
// one functional component) so "/" and "/diag" have something to walk.
func samplePage() *vnode.VNode {
	greeting := &vnode.Func{
		Name: "Greeting",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			name, _ := props["name"].(string)
			return &vnode.VNode{
				NodeName:   "span",
				Attributes: map[string]any{"class": "greeting"},
				Children:   []any{"hello, " + name},
			}
		},
	}

	return &vnode.VNode{
		NodeName: "div",
		Attributes: map[string]any{
			"id":    "app",
			"style": map[string]any{"color": "navy"},
		},
		AttrOrder: []string{"id", "style"},
		Children: []any{
			&vnode.VNode{NodeName: greeting, Attributes: map[string]any{"name": "world"}},
			&vnode.VNode{NodeName: "br"},
			&vnode.VNode{NodeName: "p", Children: []any{"static paragraph"}},
		},
	}
}
