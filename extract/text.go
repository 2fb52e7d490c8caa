package extract

// titlePrefixLen is how much of the content seeds a default title.
const titlePrefixLen = 50

// extractText passes raw text through unchanged.
func (e *Extractor) extractText(desc ContentDescriptor) ContentState {
	state := ContentState{IdentifiedType: "text"}

	if desc.Text == "" {
		state.Err = ErrNoContent
		return state
	}

	state.Content = desc.Text
	state.Title = desc.Title
	if state.Title == "" {
		state.Title = defaultTextTitle(desc.Text)
	}
	return state
}

// defaultTextTitle derives a title from the leading characters of the text.
func defaultTextTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titlePrefixLen {
		runes = runes[:titlePrefixLen]
	}
	return string(runes) + "..."
}
