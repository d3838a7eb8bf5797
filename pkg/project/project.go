package project

const (
	Name    = "weather"
	Version = "0.1.0"
)
