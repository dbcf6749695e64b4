package render

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/streamvdom/ssrender/vnode"
)

// MetricsConfig configures the Prometheus metrics an Instrumentation
// records.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "ssrender").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to register with.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures a MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels applied to every metric.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the render-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry to register metrics with.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "ssrender",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Instrumentation wraps a Renderer with a render-duration histogram, a
// chunk counter, and a component-error counter: a promauto-registered
// metric set applied around each render call.
type Instrumentation struct {
	renderer *Renderer

	renderDuration  *prometheus.HistogramVec
	chunksEmitted   *prometheus.CounterVec
	componentErrors *prometheus.CounterVec
}

// NewInstrumentation registers the render metrics with opts.Registry (or
// prometheus.DefaultRegisterer) and returns an Instrumentation that wraps
// renderer's calls to record them.
func NewInstrumentation(renderer *Renderer, opts ...MetricsOption) *Instrumentation {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Instrumentation{
		renderer: renderer,
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Time spent rendering a VNode tree to completion.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"mode", "status"}),
		chunksEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "chunks_emitted_total",
			Help:        "Total element/component chunk boundaries crossed by the walker.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind"}),
		componentErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "component_errors_total",
			Help:        "Total component lifecycle panics recovered as ComponentError.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"component"}),
	}
}

func (i *Instrumentation) mode() string {
	if i.renderer.opts.XML {
		return "xml"
	}
	return "html"
}

// instrumentedHooks returns walkerHooks that increment chunksEmitted and
// componentErrors, composed on top of any hooks already installed on the
// wrapped Renderer (e.g. a tracer from WithTracer).
func (i *Instrumentation) instrumentedHooks() walkerHooks {
	base := i.renderer.hooks
	// counted is the last error attributed to a component, so the ancestors
	// the same error unwinds through do not count it again.
	var counted error
	return walkerHooks{
		onElement: func(tag string) func() {
			i.chunksEmitted.WithLabelValues("element").Inc()
			return base.element(tag)
		},
		onComponent: func(name string, errp *error) func() {
			i.chunksEmitted.WithLabelValues("component").Inc()
			baseEnd := base.component(name, errp)
			return func() {
				baseEnd()
				if errp == nil || *errp == nil || *errp == counted {
					return
				}
				counted = *errp
				var rerr *RenderError
				if errors.As(*errp, &rerr) && rerr.Kind == KindComponentError {
					i.componentErrors.WithLabelValues(name).Inc()
				}
			}
		},
	}
}

func (i *Instrumentation) render(fn func(*Renderer) (string, error)) (string, error) {
	r := *i.renderer
	r.hooks = i.instrumentedHooks()
	start := time.Now()
	out, err := fn(&r)
	status := "ok"
	if err != nil {
		status = "error"
	}
	i.renderDuration.WithLabelValues(i.mode(), status).Observe(time.Since(start).Seconds())
	return out, err
}

// RenderToString instruments a call to the wrapped Renderer's
// RenderToString.
func (i *Instrumentation) RenderToString(root *vnode.VNode, ctx vnode.Context) (string, error) {
	return i.render(func(r *Renderer) (string, error) {
		return r.RenderToString(root, ctx)
	})
}
