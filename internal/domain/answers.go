package domain

// Choice is a preset selection with an optional free-text override.
// Custom is only meaningful when Value is CustomValue.
type Choice struct {
	Value  string
	Custom string
}

// IsCustom reports whether the free-text override is active.
func (c Choice) IsCustom() bool {
	return c.Value == CustomValue
}

// Emphasis holds the instructor requirements the user ticked, in the order
// they were ticked, plus an optional free-text requirement.
type Emphasis struct {
	Tags   []EmphasisTag
	Custom string
}

// LegacyEmphasis maps the older single free-text emphasis field onto the
// multi-select model.
func LegacyEmphasis(text string) Emphasis {
	return Emphasis{Custom: text}
}

// Has reports whether tag is selected.
func (e Emphasis) Has(tag EmphasisTag) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Toggle selects or deselects tag. Deselecting EmphasisCustom also clears
// the custom text.
func (e *Emphasis) Toggle(tag EmphasisTag, on bool) {
	if on {
		if !e.Has(tag) {
			e.Tags = append(e.Tags, tag)
		}
		return
	}
	kept := make([]EmphasisTag, 0, len(e.Tags))
	for _, t := range e.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	e.Tags = kept
	if tag == EmphasisCustom {
		e.Custom = ""
	}
}

// AnswerState is everything the user has entered in one wizard session.
// The zero value is the empty session.
type AnswerState struct {
	AssignmentType Choice
	AuthorLevel    Choice
	Tone           Choice
	MajorField     Choice
	Emphasis       Emphasis
	Topic          string
	Keywords       string
	References     string
}

// Clone returns a copy that shares no memory with s.
func (s AnswerState) Clone() AnswerState {
	out := s
	if s.Emphasis.Tags != nil {
		out.Emphasis.Tags = append([]EmphasisTag(nil), s.Emphasis.Tags...)
	}
	return out
}

func (s *AnswerState) choice(f ChoiceField) *Choice {
	switch f {
	case FieldAssignmentType:
		return &s.AssignmentType
	case FieldAuthorLevel:
		return &s.AuthorLevel
	case FieldTone:
		return &s.Tone
	case FieldMajorField:
		return &s.MajorField
	}
	return nil
}

// Choice returns the current value of a preset-or-custom field.
func (s *AnswerState) Choice(f ChoiceField) Choice {
	if c := s.choice(f); c != nil {
		return *c
	}
	return Choice{}
}

// SetChoice stores a preset value. Picking anything other than CustomValue
// discards a previously typed override.
func (s *AnswerState) SetChoice(f ChoiceField, value string) {
	c := s.choice(f)
	if c == nil {
		return
	}
	c.Value = value
	if value != CustomValue {
		c.Custom = ""
	}
}

// SetCustom stores the free-text override of a field.
func (s *AnswerState) SetCustom(f ChoiceField, text string) {
	if c := s.choice(f); c != nil {
		c.Custom = text
	}
}

// ToggleEmphasis selects or deselects one emphasis tag.
func (s *AnswerState) ToggleEmphasis(tag EmphasisTag, on bool) {
	s.Emphasis.Toggle(tag, on)
}

// SetEmphasisCustom stores the free-text emphasis requirement.
func (s *AnswerState) SetEmphasisCustom(text string) {
	s.Emphasis.Custom = text
}

// SetText stores one of the plain free-text fields.
func (s *AnswerState) SetText(f TextField, text string) {
	switch f {
	case FieldTopic:
		s.Topic = text
	case FieldKeywords:
		s.Keywords = text
	case FieldReferences:
		s.References = text
	}
}
