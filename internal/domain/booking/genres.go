package booking

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is the ordered list of genre tags attached to a venue or artist.
// It is stored as one JSON text column so the same schema runs on postgres
// and on the sqlite driver used in tests.
type Genres []string

func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		g = Genres{}
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *Genres) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("unsupported genres column type %T", value)
	}
}
