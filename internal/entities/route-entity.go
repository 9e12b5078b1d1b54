package entities

type Route struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Cost    float64 `json:"cost" db:"cost"`
	Traffic float64 `json:"traffic" db:"traffic"`
}
