package domain

// Selection is the in-progress brand/season/department choice of a briefing.
// The zero value has every field empty.
type Selection struct {
	Brand      string
	Season     string
	Department string
}

// SummaryPlaceholder stands in for an empty selection value in summaries.
const SummaryPlaceholder = "-"

// IsComplete reports whether all three fields are non-empty.
func (s Selection) IsComplete() bool {
	return s.Brand != "" && s.Season != "" && s.Department != ""
}

// IsEmpty reports whether no field has been set.
func (s Selection) IsEmpty() bool {
	return s.Brand == "" && s.Season == "" && s.Department == ""
}

// Values returns brand, season and department in display order.
func (s Selection) Values() []string {
	return []string{s.Brand, s.Season, s.Department}
}

// SummaryValues returns Values with empty entries replaced by SummaryPlaceholder.
func (s Selection) SummaryValues() []string {
	vals := s.Values()
	for i, v := range vals {
		if v == "" {
			vals[i] = SummaryPlaceholder
		}
	}
	return vals
}

// SetValues returns only the non-empty values, in display order.
func (s Selection) SetValues() []string {
	var out []string
	for _, v := range s.Values() {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
