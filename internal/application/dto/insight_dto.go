package dto

import "time"

// InsightStateDTO estado del último análisis de IA.
type InsightStateDTO struct {
	Insight   string     `json:"insight"`
	Loading   bool       `json:"loading"`
	Degraded  bool       `json:"degraded"` // true si se muestra el texto de respaldo
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
