package dto

type ReviewOutput struct {
	Today   int    `json:"today"`
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type HistoryInput struct {
	Days int
}

type DayOutput struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
