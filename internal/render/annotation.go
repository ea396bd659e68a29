package render

import "github.com/badele/ansirun/internal/sink"

const (
	osc       = "\x1b]"
	st        = "\x1b\\"
	oscTitle  = osc + "2;"
	oscLink   = osc + "8;;"
	linkClose = oscLink + st
)

type AnnotationKind int

const (
	AnnotationNone AnnotationKind = iota
	AnnotationTitle
	AnnotationLink
)

// Annotation wraps fragment content in OSC sequences. It is independent of
// the style: style codes always go outside the wrapping.
type Annotation struct {
	Kind AnnotationKind
	URL  Content
}

func Title() Annotation {
	return Annotation{Kind: AnnotationTitle}
}

func Link(url Content) Annotation {
	return Annotation{Kind: AnnotationLink, URL: url}
}

func (a Annotation) wrap(s sink.Sink, content Content) error {
	switch a.Kind {
	case AnnotationLink:
		if err := s.WriteString(oscLink); err != nil {
			return err
		}
		if err := a.URL.Render(s); err != nil {
			return err
		}
		if err := s.WriteString(st); err != nil {
			return err
		}
		if err := content.Render(s); err != nil {
			return err
		}
		return s.WriteString(linkClose)

	case AnnotationTitle:
		if err := s.WriteString(oscTitle); err != nil {
			return err
		}
		if err := content.Render(s); err != nil {
			return err
		}
		return s.WriteString(st)
	}

	return content.Render(s)
}
