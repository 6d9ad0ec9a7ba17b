package game

import "github.com/lucasb-eyer/go-colorful"

// Arena is the rectangular play field, [0,Width] x [0,Height].
type Arena struct {
	Width  float64
	Height float64
	Color  colorful.Color
}
