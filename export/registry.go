// Package export maps export formats to their Exporters.
package export

import (
	"io"
	"slices"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure Registry implements leximorph.Exporter at compile time.
var _ leximorph.Exporter = (*Registry)(nil)

// Registry holds one Exporter per format. Used as a leximorph.Exporter it
// writes the default format.
type Registry struct {
	def       leximorph.Format
	exporters map[leximorph.Format]leximorph.Exporter
}

// NewRegistry creates an empty Registry whose default format is def.
func NewRegistry(def leximorph.Format) *Registry {
	return &Registry{
		def:       def,
		exporters: make(map[leximorph.Format]leximorph.Exporter),
	}
}

// Register adds an exporter for a format.
// If an exporter is already registered for the format, it is replaced.
func (r *Registry) Register(format leximorph.Format, e leximorph.Exporter) {
	r.exporters[format] = e
}

// Get returns the exporter for a format.
// Returns ENOTFOUND if no exporter is registered for it.
func (r *Registry) Get(format leximorph.Format) (leximorph.Exporter, error) {
	e, ok := r.exporters[format]
	if !ok {
		return nil, leximorph.Errorf(leximorph.ENOTFOUND, "unsupported export format %q", format)
	}
	return e, nil
}

// List returns the registered formats in the order of leximorph.Formats,
// followed by any others sorted by name.
func (r *Registry) List() []leximorph.Format {
	formats := make([]leximorph.Format, 0, len(r.exporters))
	for _, f := range leximorph.Formats() {
		if _, ok := r.exporters[f]; ok {
			formats = append(formats, f)
		}
	}
	var extra []leximorph.Format
	for f := range r.exporters {
		if !slices.Contains(formats, f) {
			extra = append(extra, f)
		}
	}
	slices.Sort(extra)
	return append(formats, extra...)
}

// ExportAs writes the article to w in the given format.
func (r *Registry) ExportAs(w io.Writer, format leximorph.Format, article *leximorph.Article, opts leximorph.ExportOptions) error {
	e, err := r.Get(format)
	if err != nil {
		return err
	}
	return e.Export(w, article, opts)
}

// Export writes the article in the default format.
func (r *Registry) Export(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error {
	return r.ExportAs(w, r.def, article, opts)
}
