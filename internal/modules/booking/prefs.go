// README: Deterministic preference serialization shared by wizard and formatter.
package booking

import "strings"

const notesSeparator = "; Notes: "

// BuildPreferences serializes tags and note as "Tags: t1, t2; Notes: <note>".
// An empty clause is omitted entirely; the result is "" iff both are empty.
// Separator sequences inside a tag are collapsed to spaces so the first
// notes separator in the result is always the real clause boundary; the note
// itself may contain anything.
func BuildPreferences(tags []string, note string) string {
	note = strings.TrimSpace(note)

	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = sanitizeTag(t); t != "" {
			clean = append(clean, t)
		}
	}

	switch {
	case len(clean) == 0 && note == "":
		return ""
	case len(clean) == 0:
		return "Notes: " + note
	case note == "":
		return "Tags: " + strings.Join(clean, ", ")
	default:
		return "Tags: " + strings.Join(clean, ", ") + notesSeparator + note
	}
}

// sanitizeTag keeps a tag free of the serialization's own separators. Quick
// tags never contain them; typed tags that do are flattened rather than
// allowed to corrupt the clause structure.
func sanitizeTag(t string) string {
	t = strings.ReplaceAll(t, notesSeparator, " ")
	t = strings.ReplaceAll(t, ", ", " ")
	return strings.Join(strings.Fields(t), " ")
}

// ParsePreferences inverts BuildPreferences. The cut at the first notes
// separator is exact because sanitizeTag keeps it out of the tag clause.
func ParsePreferences(s string) (tags []string, note string) {
	if s == "" {
		return nil, ""
	}
	if rest, ok := strings.CutPrefix(s, "Notes: "); ok {
		return nil, rest
	}
	rest, ok := strings.CutPrefix(s, "Tags: ")
	if !ok {
		return nil, s
	}
	if tagPart, notePart, found := strings.Cut(rest, notesSeparator); found {
		return strings.Split(tagPart, ", "), notePart
	}
	return strings.Split(rest, ", "), ""
}
