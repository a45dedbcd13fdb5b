package main

type MineRequest struct {
	Input      string  `json:"input"`
	Support    float64 `json:"support"`
	Confidence float64 `json:"confidence"`
	Output     string  `json:"output"`
}
