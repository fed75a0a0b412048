package enhance

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/bimmerbailey/cssmin/internal/minify"
)

var hslRe = regexp.MustCompile(`(?i)hsl\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)`)

// optimizeColors rewrites hsl() as rgb() and hands the result to the core
// colour rewrites, which turn it into the shortest hex or keyword form.
func optimizeColors(pc *passContext, css string) string {
	converted := 0
	css = hslRe.ReplaceAllStringFunc(css, func(m string) string {
		sub := hslRe.FindStringSubmatch(m)
		h, _ := strconv.Atoi(sub[1])
		s, _ := strconv.Atoi(sub[2])
		l, _ := strconv.Atoi(sub[3])

		r, g, b := hslToRGB(h, s, l)
		converted++
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	})

	pc.stats.ColorsConverted += converted
	return minify.OptimizeColors(css)
}

// hslToRGB converts hue in degrees and saturation/lightness in percent to
// 8-bit channels.
func hslToRGB(h, s, l int) (int, int, int) {
	hue := float64(h%360) / 360
	sat := math.Min(float64(s), 100) / 100
	light := math.Min(float64(l), 100) / 100

	if sat == 0 {
		v := channel(light)
		return v, v, v
	}

	var q float64
	if light < 0.5 {
		q = light * (1 + sat)
	} else {
		q = light + sat - light*sat
	}
	p := 2*light - q

	return channel(hueToRGB(p, q, hue+1.0/3)),
		channel(hueToRGB(p, q, hue)),
		channel(hueToRGB(p, q, hue-1.0/3))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}
