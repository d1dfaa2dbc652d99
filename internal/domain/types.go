package domain

import "time"

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Techniques records which solving techniques are enabled for a run.
type Techniques struct {
	MRV             bool `json:"mrv"`
	ForwardChecking bool `json:"forwardChecking"`
	AC3             bool `json:"ac3"`
	LCV             bool `json:"lcv"`
}

// AllTechniques is the default configuration with everything on.
func AllTechniques() Techniques {
	return Techniques{MRV: true, ForwardChecking: true, AC3: true, LCV: true}
}

// Result is a persisted solve outcome with metadata.
type Result struct {
	ID         string        `json:"id,omitempty"`
	Name       string        `json:"name,omitempty"`
	Techniques Techniques    `json:"techniques"`
	Givens     int           `json:"givens"`
	Solved     bool          `json:"solved"`
	Puzzle     Board         `json:"puzzle"`
	Solution   *Board        `json:"solution,omitempty"`
	Nodes      int           `json:"nodes"`
	Duration   time.Duration `json:"duration"`
	CreatedAt  int64         `json:"createdAt,omitempty"`
}

// ResultMeta is a lightweight listing entry.
type ResultMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
