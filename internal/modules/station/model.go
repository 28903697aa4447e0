// README: Station reference data for the metro network.
package station

import "citypass/internal/types"

// Line identifies the metro corridor a station sits on.
type Line string

const (
	LineRed         Line = "red"
	LineBlue        Line = "blue"
	LineGreen       Line = "green"
	LineInterchange Line = "interchange"
)

// Station is one stop in the ordered network table. The table position of a
// station, not its coordinates, defines distance between stops.
type Station struct {
	ID   types.ID `json:"id"`
	Name string   `json:"name"`
	Line Line     `json:"line"`
}
