package webkit

import (
	"github.com/jwijenbergh/puregotk/v4/gdk"
)

// argbComponents splits a 0xAARRGGBB colour into normalized components.
func argbComponents(argb uint32) (r, g, b, a float32) {
	a = float32(argb>>24&0xff) / 255
	r = float32(argb>>16&0xff) / 255
	g = float32(argb>>8&0xff) / 255
	b = float32(argb&0xff) / 255
	return r, g, b, a
}

// toGdkRGBA converts a browser background colour. Zero is fully transparent,
// which lets native panels below the web view show through.
func toGdkRGBA(argb uint32) *gdk.RGBA {
	r, g, b, a := argbComponents(argb)
	return &gdk.RGBA{Red: r, Green: g, Blue: b, Alpha: a}
}
