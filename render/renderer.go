package render

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/streamvdom/ssrender/vnode"
)

// Renderer is the entry point for driving a render: it pairs an immutable
// Options value with optional observability hooks (logging, metrics,
// tracing) that the walker calls at element/component boundaries. The
// zero value is a fully usable renderer with default options and a
// discard logger.
type Renderer struct {
	opts   Options
	logger *slog.Logger
	hooks  walkerHooks
}

// RendererOption configures a Renderer constructed via NewRenderer.
type RendererOption func(*Renderer)

// WithLogger sets the logger used for render-lifecycle diagnostics
// (start, finish, error).
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer builds a Renderer for the given Options. By default it logs
// to slog.Default() (render failures at Error level, start/finish at Debug)
// and no metrics/tracing hooks are installed; compose
// Instrumentation (metrics.go) or WithTracer (tracing.go) to add those.
func NewRenderer(opts Options, rendererOpts ...RendererOption) *Renderer {
	r := &Renderer{opts: opts, logger: slog.Default()}
	for _, opt := range rendererOpts {
		opt(r)
	}
	return r
}

// RenderToString drives the walker synchronously and concatenates every
// emitted chunk into a single string.
func (r *Renderer) RenderToString(root *vnode.VNode, ctx vnode.Context) (string, error) {
	var buf bytes.Buffer
	if err := r.renderTo(&buf, root, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToStream returns a reader that yields one read per emitted chunk.
// The walk runs on its own goroutine; each chunk is written through an
// io.Pipe, so a slow or stalled reader applies back-pressure by blocking
// the writer, and closing the reader aborts the walk at its next
// boundary.
func (r *Renderer) RenderToStream(root *vnode.VNode, ctx vnode.Context) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		err := r.renderTo(pw, root, ctx)
		pw.CloseWithError(err)
	}()
	return pr
}

// RenderChunks drives the walker synchronously and returns every flushed
// chunk as a separate string, in emission order. Each chunk corresponds
// to one element or component boundary that found pending output, plus
// the final flush; this is the shape the chunk-boundary discipline is
// tested against.
func (r *Renderer) RenderChunks(root *vnode.VNode, ctx vnode.Context) ([]string, error) {
	cw := &chunkCollector{}
	err := r.renderTo(cw, root, ctx)
	return cw.chunks, err
}

// ShallowRender renders root with Options.Shallow forced on, regardless of
// the Renderer's configured Options otherwise.
func (r *Renderer) ShallowRender(root *vnode.VNode, ctx vnode.Context) (string, error) {
	shallow := *r
	shallow.opts.Shallow = true
	return shallow.RenderToString(root, ctx)
}

func (r *Renderer) renderTo(w io.Writer, root *vnode.VNode, ctx vnode.Context) error {
	logger := r.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("render start", "xml", r.opts.XML, "shallow", r.opts.Shallow)
	walker := &walker{driver: newStreamDriver(w), opts: r.opts, hooks: r.hooks}
	err := walker.walk(root, ctx, 0, 0)
	if err == nil {
		err = walker.driver.finish()
	}
	if err != nil {
		logger.Error("render failed", "error", err)
		return err
	}
	logger.Debug("render finished")
	return nil
}

// chunkCollector is an io.Writer that records each Write call as its own
// chunk, used to expose the StreamDriver's boundary discipline directly to
// tests and to RenderChunks without going through a pipe.
type chunkCollector struct {
	chunks []string
}

func (c *chunkCollector) Write(p []byte) (int, error) {
	c.chunks = append(c.chunks, string(p))
	return len(p), nil
}

// RenderToString is the package-level convenience form of
// Renderer.RenderToString, for callers that do not need logging or
// instrumentation.
func RenderToString(root *vnode.VNode, ctx vnode.Context, opts Options) (string, error) {
	return NewRenderer(opts).RenderToString(root, ctx)
}

// RenderToStream is the package-level convenience form of
// Renderer.RenderToStream.
func RenderToStream(root *vnode.VNode, ctx vnode.Context, opts Options) io.ReadCloser {
	return NewRenderer(opts).RenderToStream(root, ctx)
}

// ShallowRender is equivalent to RenderToString(root, ctx,
// Options{Shallow: true}).
func ShallowRender(root *vnode.VNode, ctx vnode.Context) (string, error) {
	return NewRenderer(Options{}).ShallowRender(root, ctx)
}

// RenderChunks is the package-level convenience form of
// Renderer.RenderChunks.
func RenderChunks(root *vnode.VNode, ctx vnode.Context, opts Options) ([]string, error) {
	return NewRenderer(opts).RenderChunks(root, ctx)
}
