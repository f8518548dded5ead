package models

// Post is one record of the upstream content collection. Field tags match
// the placeholder API's JSON exactly.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// SortDirection tracks how the collection is currently ordered by title.
type SortDirection int

const (
	SortUnset SortDirection = iota
	SortAscending
	SortDescending
)

// MarshalJSON emits the direction as its string form so API consumers see
// "ascending" rather than an enum ordinal.
func (d SortDirection) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "unset"
	}
}

// Snapshot is the pipeline's session state as handed to renderers: the
// ordered collection plus the direction flag. Posts is a copy; holders may
// keep it across later pipeline operations.
type Snapshot struct {
	Posts     []Post        `json:"posts"`
	Direction SortDirection `json:"direction"`
}
