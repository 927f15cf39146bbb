package term

// Renderer runs the full compilation pipeline: ingest, import resolution and
// component expansion to a fixpoint, list unrolling, expression filling,
// conditional pruning, serialization. Each Renderer owns its component
// cache, so renderers with different template roots never observe each
// other's components.
//
// A Renderer is safe for concurrent use: every render builds a fresh tree,
// and the cache and evaluator guard their own state.
type Renderer struct {
	source Source
	cache  *ComponentCache
	eval   Evaluator
	config *Config
	logger *Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSource sets the file-reading capability. Defaults to the OS filesystem.
func WithSource(s Source) RendererOption {
	return func(r *Renderer) { r.source = s }
}

// WithConfig overrides the global configuration for this renderer.
func WithConfig(c *Config) RendererOption {
	return func(r *Renderer) { r.config = c }
}

// WithLogger overrides the global logger for this renderer.
func WithLogger(l *Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// WithEvaluator swaps the expression engine.
func WithEvaluator(e Evaluator) RendererOption {
	return func(r *Renderer) { r.eval = e }
}

// NewRenderer creates a renderer with an empty component cache.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		source: OSSource{},
		cache:  NewComponentCache(),
		eval:   NewExprEvaluator(),
		config: GetGlobalConfig(),
		logger: GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render compiles the page at path against the given context and returns the
// serialized document.
//
// Structural errors (missing or duplicate document root) come back as
// in-band *StructuralError values the caller can recover from; unresolved
// components, non-termination, and document read/parse failures are fatal
// and unwind the whole render with no partial output.
func (r *Renderer) Render(path string, ctx Context) (string, error) {
	log := r.logger.WithField("page", path)

	data, err := r.source.ReadFile(path)
	if err != nil {
		return "", NewDocumentError("read", path, err)
	}
	root, err := ParseDocument(data, path)
	if err != nil {
		return "", err
	}

	if err := r.expandTemplates(root, path); err != nil {
		log.Error("template expansion failed: %v", err)
		return "", err
	}
	if err := r.expandLists(root, ctx); err != nil {
		log.Error("list expansion failed: %v", err)
		return "", err
	}
	r.fillExpressions(root, ctx)
	r.resolveConditionals(root, ctx)

	out := Serialize(root)
	log.Debug("rendered %d bytes", len(out))
	return out, nil
}

// RenderTree runs the post-ingestion pipeline stages on an existing tree.
// Useful when the caller already holds a parsed document.
func (r *Renderer) RenderTree(root *Node, basePath string, ctx Context) (string, error) {
	if err := r.expandTemplates(root, basePath); err != nil {
		return "", err
	}
	if err := r.expandLists(root, ctx); err != nil {
		return "", err
	}
	r.fillExpressions(root, ctx)
	r.resolveConditionals(root, ctx)
	return Serialize(root), nil
}

// Render compiles a page with a throwaway renderer reading from the OS
// filesystem. Callers that render more than once should keep a Renderer so
// imported components stay cached.
func Render(path string, ctx Context) (string, error) {
	return NewRenderer().Render(path, ctx)
}
