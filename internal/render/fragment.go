package render

import (
	"strings"

	"github.com/badele/ansirun/internal/sink"
	"github.com/badele/ansirun/internal/types"
)

// Fragment is a piece of content displayed with one style.
type Fragment struct {
	Style      types.Style
	Content    Content
	Annotation Annotation
}

func Paint(style types.Style, content Content) Fragment {
	return Fragment{Style: style, Content: content}
}

func Plain(content Content) Fragment {
	return Fragment{Content: content}
}

// NewTitle returns a fragment setting the terminal title to content. It
// produces no visible text.
func NewTitle(content Content) Fragment {
	return Fragment{Content: content, Annotation: Title()}
}

// Hyperlink returns f linking to url.
func (f Fragment) Hyperlink(url Content) Fragment {
	f.Annotation = Link(url)
	return f
}

func (f Fragment) URL() (Content, bool) {
	if f.Annotation.Kind != AnnotationLink {
		return Content{}, false
	}
	return f.Annotation.URL, true
}

// Render writes the prefix of the style, the annotated content and the
// suffix.
func (f Fragment) Render(s sink.Sink, d types.Dialect) error {
	if err := s.WriteString(f.Style.Prefix(d)); err != nil {
		return err
	}
	if err := f.Annotation.wrap(s, f.Content); err != nil {
		return err
	}
	return s.WriteString(f.Style.Suffix())
}

func (f Fragment) String() string {
	var sb strings.Builder
	_ = f.Render(sink.NewTextSink(&sb), types.DefaultDialect)
	return sb.String()
}
