// Package goals define los bodies de /goals.
package goals

import "time"

// Subgoal dentro de un goal. En un PUT, un subgoal sin ID es alta nueva;
// con ID es update; los existentes que no aparecen en el payload se eliminan.
type Subgoal struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Goal con sus subgoals anidados.
type Goal struct {
	ID          string     `json:"id,omitempty"`
	ProfileID   string     `json:"profileId,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Completed   bool       `json:"completed"`
	Subgoals    []Subgoal  `json:"subgoals"`
}

// ListResponse es la respuesta de GET /goals.
type ListResponse struct {
	Total int    `json:"total"`
	Data  []Goal `json:"data"`
}
