package drag_session

// MoveDragRequest HTTP request model: накопленное смещение жеста в пикселях
type MoveDragRequest struct {
	Translation *float64 `json:"translation"`
}
