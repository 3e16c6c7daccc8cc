package models

type WikiPage struct {
	*Base
	ContentMarkdown string
	ContentHTML     string
	RevisionDate    float64
	MayRevise       bool
}

func NewWikiPage(session Session, attrs Attributes) (Thing, error) {
	return &WikiPage{
		Base:            newBase(session, attrs),
		ContentMarkdown: attrs.String("content_md"),
		ContentHTML:     attrs.String("content_html"),
		RevisionDate:    attrs.Float("revision_date"),
		MayRevise:       attrs.Bool("may_revise"),
	}, nil
}

// LabeledMulti is a multireddit.
type LabeledMulti struct {
	*Base
	Name        string
	DisplayName string
	Path        string
	Visibility  string
	Subreddits  []string
}

func NewLabeledMulti(session Session, attrs Attributes) (Thing, error) {
	m := &LabeledMulti{
		Base:        newBase(session, attrs),
		Name:        attrs.String("name"),
		DisplayName: attrs.String("display_name"),
		Path:        attrs.String("path"),
		Visibility:  attrs.String("visibility"),
	}

	subs, _ := attrs["subreddits"].([]any)
	for _, s := range subs {
		if entry, ok := asMap(s); ok {
			if name, ok := entry["name"].(string); ok {
				m.Subreddits = append(m.Subreddits, name)
			}
		}
	}

	return m, nil
}

func (m *LabeledMulti) String() string {
	if m.Path != "" {
		return m.Path
	}
	return m.Base.String()
}
