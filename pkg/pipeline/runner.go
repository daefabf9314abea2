package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/flowcanvas/flowcanvas/pkg/cache"
	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
	"github.com/flowcanvas/flowcanvas/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and HTTP service use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.Logger.With("run", uuid.NewString()[:8])
	r.applyLogger(&opts, logger)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	tree, treeHash, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	observability.Pipeline().OnParseComplete(ctx, countScopes(tree), time.Since(parseStart), err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Tree = tree
	result.TreeHash = treeHash
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.ScopeCount = countScopes(tree)
	result.CacheInfo.ParseHit = parseHit

	logger.Info("parsed tree",
		"scopes", result.Stats.ScopeCount,
		"cached", parseHit,
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	cvs, info, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, tree, treeHash, opts)
	observability.Pipeline().OnLayoutComplete(ctx, info.Width, info.Height, time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = info
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"width", info.Width,
		"height", info.Height,
		"targets", len(info.Targets),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, cvs, tree, info, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ParseWithCacheInfo reads the scope tree with caching and returns the
// canonical tree hash alongside cache hit info.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*flow.Scope, string, bool, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, "", false, err
	}

	source, err := SourceBytes(opts)
	if err != nil {
		return nil, "", false, err
	}
	cacheKey := r.Keyer.TreeKey(cache.Hash(source))

	// Try cache first (unless refresh requested). The cached value is the
	// canonical re-serialization, so its hash doubles as the tree hash.
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			tree, err := flow.ReadJSON(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "tree")
				return tree, cache.Hash(data), true, nil
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "tree")

	tree, err := flow.ReadJSON(bytes.NewReader(source))
	if err != nil {
		return nil, "", false, fmt.Errorf("parse tree: %w", err)
	}

	var canonical bytes.Buffer
	if err := flow.WriteJSON(tree, &canonical); err != nil {
		return nil, "", false, fmt.Errorf("serialize tree: %w", err)
	}
	treeHash := cache.Hash(canonical.Bytes())
	_ = r.Cache.Set(ctx, cacheKey, canonical.Bytes(), cache.TTLTree)
	observability.Cache().OnCacheSet(ctx, "tree", canonical.Len())

	return tree, treeHash, false, nil
}

// Parse is a convenience wrapper that discards the hash and cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*flow.Scope, error) {
	tree, _, _, err := r.ParseWithCacheInfo(ctx, opts)
	return tree, err
}

// ComputeLayoutWithCacheInfo negotiates layout geometry with caching.
//
// On a cache hit the returned canvas is nil: the geometry summary came from
// the cache without building the grid. The render stage rebuilds the grid
// lazily if an artifact still needs drawing.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, tree *flow.Scope, treeHash string, opts Options) (*canvas.Canvas, LayoutInfo, bool, error) {
	opts.SetLayoutDefaults()
	cacheKey := r.Keyer.LayoutKey(treeHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			info, err := UnmarshalLayoutInfo(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return nil, info, true, nil
			}
			// Corrupt entries fall through to recompute.
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	cvs, info, err := ComputeLayout(tree, opts)
	if err != nil {
		return nil, LayoutInfo{}, false, err
	}

	if data, err := MarshalLayoutInfo(info); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return cvs, info, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. A nil canvas is rebuilt from the tree when any format misses.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, cvs *canvas.Canvas, tree *flow.Scope, info LayoutInfo, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := MarshalLayoutInfo(info)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	if cvs == nil {
		cvs, _, err = ComputeLayout(tree, opts)
		if err != nil {
			return nil, false, err
		}
	}

	rendered, err := Render(cvs, tree, info, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the per-run logger on options if none was provided.
func (r *Runner) applyLogger(opts *Options, logger *log.Logger) {
	if opts.Logger == nil {
		opts.Logger = logger
	}
}
