package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// layoutDir is where HTML layouts live inside the template filesystem.
const layoutDir = "layouts"

// Renderer converts markdown templates with YAML frontmatter to HTML wrapped in
// a layout. Parsed templates are cached; rendering itself is deterministic for
// fixed inputs.
type Renderer struct {
	fsys fs.FS
	md   goldmark.Markdown

	mu        sync.RWMutex
	templates map[string]*reportTemplate
	layouts   map[string]*template.Template
}

// reportTemplate holds one parsed markdown template for reuse.
type reportTemplate struct {
	metadata map[string]any
	body     *texttemplate.Template
}

// NewRenderer creates a renderer over the given filesystem. Templates are read
// from the filesystem root, layouts from its "layouts" directory.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:      fsys,
		md:        goldmark.New(),
		templates: make(map[string]*reportTemplate),
		layouts:   make(map[string]*template.Template),
	}
}

// RenderResult contains the rendered HTML, plain text, and template metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // Processed markdown, before HTML conversion
}

// Render interpolates a markdown template with data, converts it to HTML, and
// wraps it in the named layout. The processed markdown is returned as Text so
// callers can build a multipart/alternative message.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	tmpl, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tmpl.body.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	err = layoutTmpl.Execute(&html, map[string]any{
		"Content":  template.HTML(content.String()),
		"Metadata": tmpl.metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	return &RenderResult{
		Metadata: tmpl.metadata,
		HTML:     html.String(),
		Text:     markdown.String(),
	}, nil
}

// template returns a cached parsed template, reading it from the filesystem on
// first use.
func (r *Renderer) template(name string) (*reportTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	metadata, body, err := parseFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	parsed, err := texttemplate.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse template body: %v", ErrRenderFailed, err)
	}

	tmpl := &reportTemplate{metadata: metadata, body: parsed}
	r.templates[name] = tmpl
	return tmpl, nil
}

// layout returns a cached parsed layout, reading it from the filesystem on
// first use.
func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fsys, path.Join(layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	parsed, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}

	r.layouts[name] = parsed
	return parsed, nil
}
