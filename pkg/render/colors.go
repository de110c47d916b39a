package render

import "math/rand"

// edgePalette is the pool of X11 color names edges are drawn from.
// Graphviz resolves these names directly, so no hex conversion is needed.
var edgePalette = []string{
	"aquamarine", "bisque", "blue", "blueviolet", "brown", "burlywood",
	"cadetblue", "chartreuse", "chocolate", "coral", "cornflowerblue",
	"crimson", "cyan", "darkgoldenrod", "darkgreen", "darkkhaki",
	"darkmagenta", "darkolivegreen", "darkorange", "darkorchid", "darkred",
	"darksalmon", "darkseagreen", "darkslateblue", "darkslategray",
	"darkturquoise", "darkviolet", "deeppink", "deepskyblue", "dodgerblue",
	"firebrick", "forestgreen", "fuchsia", "gold", "goldenrod", "green",
	"hotpink", "indianred", "indigo", "khaki", "lawngreen", "lightcoral",
	"lightsalmon", "lightseagreen", "lightskyblue", "limegreen", "magenta",
	"maroon", "mediumaquamarine", "mediumblue", "mediumorchid",
	"mediumpurple", "mediumseagreen", "mediumslateblue", "mediumspringgreen",
	"mediumturquoise", "mediumvioletred", "midnightblue", "navy", "olive",
	"olivedrab", "orange", "orangered", "orchid", "palegreen",
	"palevioletred", "peru", "plum", "purple", "red", "rosybrown",
	"royalblue", "saddlebrown", "salmon", "seagreen", "sienna", "slateblue",
	"springgreen", "steelblue", "tan", "teal", "tomato", "turquoise",
	"violet", "yellowgreen",
}

// pickColor draws a uniform color name from the palette.
func pickColor(rng *rand.Rand) string {
	return edgePalette[rng.Intn(len(edgePalette))]
}
