package nav

import "fmt"

// NoItemsText is spoken when a menu or level holds nothing to select.
const NoItemsText = "No items"

// Format builds the utterance for the current selection. It is pure and
// idempotent: identical inputs always produce the identical string.
//
// With no active search the position within the full list is spoken. With
// an active search the position within the match set replaces it; the
// full-list position is deliberately omitted in that mode.
func Format(label string, index, count int, search *Typeahead) string {
	if count <= 0 {
		return NoItemsText
	}
	if search != nil && search.Active() && search.MatchCount() > 0 {
		return fmt.Sprintf("%s. %d of %d for '%s'", label, search.MatchPosition(), search.MatchCount(), search.Buffer())
	}
	return fmt.Sprintf("%s. %d of %d", label, Clamp(index, count)+1, count)
}

// FormatGridCell builds the utterance for a grid cell, naming the column the
// cell belongs to alongside both axis positions.
func FormatGridCell(label, column string, row, rows, col, cols int) string {
	if rows <= 0 {
		return fmt.Sprintf("%s. %s. column %d of %d", NoItemsText, column, col+1, cols)
	}
	return fmt.Sprintf("%s. %s. row %d of %d, column %d of %d", label, column, row+1, rows, col+1, cols)
}

// FormatSearchFailure names the attempted search that produced no matches.
// The committed buffer has already been rolled back by the time this is
// spoken; the failed attempt is what the user needs to hear. When a label
// is close to the attempt, it is offered as a suggestion.
func FormatSearchFailure(failed string, labels []string) string {
	msg := fmt.Sprintf("No matches for '%s'", failed)
	if suggestion, ok := Suggest(labels, failed); ok {
		msg = fmt.Sprintf("%s. Closest is %s", msg, suggestion)
	}
	return msg
}
