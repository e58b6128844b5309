package render

import (
	"fmt"

	"lifewall/internal/rule"
)

// lifeShaderTemplate is a Kage program computing one generation per fragment.
// Pixels outside the source image read as zero, which gives the same fixed dead
// border as the CPU grid.
const lifeShaderTemplate = `//kage:unit pixels

package main

func alive(pos vec2) int {
	if imageSrc0At(pos).r > 0.5 {
		return 1
	}
	return 0
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	sum := alive(srcPos+vec2(-1, -1)) + alive(srcPos+vec2(0, -1)) + alive(srcPos+vec2(1, -1)) +
		alive(srcPos+vec2(-1, 0)) + alive(srcPos+vec2(1, 0)) +
		alive(srcPos+vec2(-1, 1)) + alive(srcPos+vec2(0, 1)) + alive(srcPos+vec2(1, 1))

	val := 0.0
	if alive(srcPos) == 0 {
		if %s {
			val = 1.0
		}
	} else {
		if %s {
			val = 1.0
		}
	}
	return vec4(val, val, val, 1)
}
`

// colorShaderSource maps the white/black state texture onto the configured
// live and dead colors.
const colorShaderSource = `//kage:unit pixels

package main

var Live vec4
var Dead vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	if imageSrc0At(srcPos).r > 0.5 {
		return Live
	}
	return Dead
}
`

// LifeShaderSource embeds the rule's birth and survival expressions in the
// Kage generation shader.
func LifeShaderSource(r rule.Rule) []byte {
	return []byte(fmt.Sprintf(lifeShaderTemplate, r.Born.Expr("sum"), r.Survive.Expr("sum")))
}

// ColorShaderSource returns the Kage program that colors the state texture.
func ColorShaderSource() []byte { return []byte(colorShaderSource) }
