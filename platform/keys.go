package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Key int

const (
	KeyA Key = iota
	KeyD
	KeyP
	KeyS
	KeyW
	KeySpace
	KeyLeftShift
	KeyEscape
	KeyTab
	KeyF1
	KeyF3

	KeyCount
)

var keyToGlfw = map[Key]glfw.Key{
	KeyA:         glfw.KeyA,
	KeyD:         glfw.KeyD,
	KeyP:         glfw.KeyP,
	KeyS:         glfw.KeyS,
	KeyW:         glfw.KeyW,
	KeySpace:     glfw.KeySpace,
	KeyLeftShift: glfw.KeyLeftShift,
	KeyEscape:    glfw.KeyEscape,
	KeyTab:       glfw.KeyTab,
	KeyF1:        glfw.KeyF1,
	KeyF3:        glfw.KeyF3,
}
