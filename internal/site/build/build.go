// Package build renders every page in every configured locale to a static
// output tree.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/najrandevs/najran.dev/internal/platform/i18n/catalog"
	"github.com/najrandevs/najran.dev/internal/platform/otel"
	"github.com/najrandevs/najran.dev/internal/site/content"
	"github.com/najrandevs/najran.dev/internal/site/routepath"
	"github.com/najrandevs/najran.dev/internal/site/static"
	"github.com/najrandevs/najran.dev/internal/site/templates"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config defines the inputs of a build.
type Config struct {
	// Content is rooted at the project directory and holds translations/.
	Content fs.FS
	// ContentRoot is the on-disk project directory behind Content. Defaults
	// to the working directory.
	ContentRoot string
	// Output receives the rendered tree under OutDir.
	Output afero.Fs
	OutDir string
	// Locales to build. Defaults to every supported locale.
	Locales []i18n.Locale
	// Strict fails the build when a bundle lacks template fields.
	Strict bool
	// Clean removes OutDir before writing.
	Clean   bool
	Catalog *catalog.Bundle
	Assets  fs.FS
	Logger  *slog.Logger
}

// PageOutput describes one written page.
type PageOutput struct {
	Locale  i18n.Locale
	Page    content.Page
	URL     string
	File    string
	Bytes   int
	Missing []string
}

// Result summarises a build.
type Result struct {
	Pages  []PageOutput
	Assets []string
}

// Builder renders the site.
type Builder struct {
	resolver *content.Resolver
	output   afero.Fs
	outDir   string
	locales  []i18n.Locale
	strict   bool
	clean    bool
	catalog  *catalog.Bundle
	assets   fs.FS
	logger   *slog.Logger
}

// New validates cfg and returns a Builder.
func New(cfg Config) (*Builder, error) {
	if cfg.Content == nil {
		return nil, errors.New("content filesystem is required")
	}
	if cfg.Output == nil {
		return nil, errors.New("output filesystem is required")
	}
	if err := checkOutDir(cfg.OutDir, cfg.ContentRoot); err != nil {
		return nil, err
	}
	outDir := filepath.Clean(cfg.OutDir)
	locales := cfg.Locales
	if len(locales) == 0 {
		locales = i18n.Supported()
	}
	bundle := cfg.Catalog
	if bundle == nil {
		bundle = catalog.Default()
	}
	assets := cfg.Assets
	if assets == nil {
		assets = static.FS
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		resolver: content.NewResolver(cfg.Content),
		output:   cfg.Output,
		outDir:   outDir,
		locales:  locales,
		strict:   cfg.Strict,
		clean:    cfg.Clean,
		catalog:  bundle,
		assets:   assets,
		logger:   logger,
	}, nil
}

// Build renders every (page, locale) pair and copies static assets. The
// first error aborts the build.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	ctx, span := otel.Tracer().Start(ctx, "site.build")
	defer span.End()

	result, err := b.build(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(attribute.Int("site.pages", len(result.Pages)))
	return result, nil
}

func (b *Builder) build(ctx context.Context) (Result, error) {
	if b.clean {
		if err := b.output.RemoveAll(b.outDir); err != nil {
			return Result{}, fmt.Errorf("clean %s: %w", b.outDir, err)
		}
	}
	for _, locale := range b.locales {
		if missing := b.catalog.MissingKeys(string(locale)); len(missing) > 0 {
			b.logger.Warn("chrome catalog falls back to base locale", "locale", locale, "keys", missing)
		}
	}
	var result Result
	for _, locale := range b.locales {
		for _, page := range content.Pages() {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			out, err := b.writePage(ctx, locale, page)
			if err != nil {
				return Result{}, err
			}
			result.Pages = append(result.Pages, out)
		}
	}
	assets, err := b.copyAssets()
	if err != nil {
		return Result{}, err
	}
	result.Assets = assets
	b.logger.Info("site built", "out", b.outDir, "pages", len(result.Pages), "assets", len(assets))
	return result, nil
}

func (b *Builder) writePage(ctx context.Context, locale i18n.Locale, page content.Page) (PageOutput, error) {
	ctx, span := otel.Tracer().Start(ctx, "site.render_page")
	defer span.End()
	span.SetAttributes(
		attribute.String("site.locale", string(locale)),
		attribute.String("site.page", string(page)),
	)

	data, missing, err := b.Render(ctx, locale, page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PageOutput{}, err
	}

	logical := logicalPath(page)
	rel := routepath.OutputFile(locale, logical)
	target := filepath.Join(b.outDir, filepath.FromSlash(rel))
	if err := b.writeFile(target, data); err != nil {
		return PageOutput{}, err
	}
	b.logger.Debug("page written", "locale", locale, "page", page, "file", rel, "bytes", len(data))
	return PageOutput{
		Locale:  locale,
		Page:    page,
		URL:     routepath.Localized(locale, logical),
		File:    rel,
		Bytes:   len(data),
		Missing: missing,
	}, nil
}

// Render resolves and renders one page without writing it. The returned
// slice lists bundle fields that are missing; in strict mode they are an
// error instead.
func (b *Builder) Render(ctx context.Context, locale i18n.Locale, page content.Page) ([]byte, []string, error) {
	missing, err := b.check(locale, page)
	if err != nil {
		return nil, nil, err
	}

	pageCtx := templates.NewPageContext(locale, logicalPath(page), b.catalog.Printer(locale.Tag()))
	var component templ.Component
	switch page {
	case content.PageHome:
		messages, err := b.resolver.Home(string(locale))
		if err != nil {
			return nil, nil, fmt.Errorf("resolve %s content for %s: %w", page, locale, err)
		}
		component = templates.HomePage(pageCtx, messages)
	case content.PagePolicy:
		messages, err := b.resolver.Policy(string(locale))
		if err != nil {
			return nil, nil, fmt.Errorf("resolve %s content for %s: %w", page, locale, err)
		}
		component = templates.PolicyPage(pageCtx, messages)
	default:
		return nil, nil, fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, nil, fmt.Errorf("render %s for %s: %w", page, locale, err)
	}
	return buf.Bytes(), missing, nil
}

func (b *Builder) check(locale i18n.Locale, page content.Page) ([]string, error) {
	err := b.resolver.Check(string(locale), page)
	if err == nil {
		return nil, nil
	}
	var incomplete *content.IncompleteError
	if !errors.As(err, &incomplete) {
		return nil, fmt.Errorf("resolve %s content for %s: %w", page, locale, err)
	}
	if b.strict {
		return nil, fmt.Errorf("resolve %s content for %s: %w", page, locale, err)
	}
	b.logger.Warn("content bundle has missing fields", "locale", locale, "page", page, "path", incomplete.Path, "missing", incomplete.Missing)
	return incomplete.Missing, nil
}

func (b *Builder) copyAssets() ([]string, error) {
	var copied []string
	err := fs.WalkDir(b.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(b.assets, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}
		rel := path.Join(path.Base(routepath.StaticPrefix), p)
		if err := b.writeFile(filepath.Join(b.outDir, filepath.FromSlash(rel)), data); err != nil {
			return err
		}
		copied = append(copied, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy static assets: %w", err)
	}
	return copied, nil
}

func (b *Builder) writeFile(target string, data []byte) error {
	if err := b.output.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := afero.WriteFile(b.output, target, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// checkOutDir rejects output directories that Clean could not remove safely:
// the project root, any of its ancestors, and anything under the content
// bundles.
func checkOutDir(outDir, contentRoot string) error {
	if strings.TrimSpace(outDir) == "" {
		return errors.New("output directory is required")
	}
	if contentRoot == "" {
		contentRoot = "."
	}
	outAbs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve output directory %q: %w", outDir, err)
	}
	rootAbs, err := filepath.Abs(contentRoot)
	if err != nil {
		return fmt.Errorf("resolve content root %q: %w", contentRoot, err)
	}
	if within(outAbs, rootAbs) {
		return fmt.Errorf("output directory %q contains the project root", outDir)
	}
	if within(filepath.Join(rootAbs, content.Dir), outAbs) {
		return fmt.Errorf("output directory %q is inside %s", outDir, content.Dir)
	}
	return nil
}

// within reports whether target is dir or below it.
func within(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func logicalPath(page content.Page) string {
	if page == content.PagePolicy {
		return routepath.PrivacyPolicy
	}
	return routepath.Home
}
