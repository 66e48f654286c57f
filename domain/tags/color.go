package tags

import "unicode/utf16"

// Palette is the fixed set of badge colours.
var Palette = []string{
	"blue", "green", "purple", "pink", "yellow",
	"indigo", "red", "orange", "teal", "cyan",
}

// TagColor pairs a tag with its badge colour.
type TagColor struct {
	Tag   string `json:"tag"`
	Color string `json:"color"`
}

// Hash is the 32-bit string hash h = c + ((h << 5) - h) over UTF-16 code units, wrapping like int32.
func Hash(tag string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(tag)) {
		h = int32(c) + ((h << 5) - h)
	}
	return h
}

// Color picks the palette entry for tag. The same tag always gets the same colour.
func Color(tag string) string {
	h := int64(Hash(tag))
	if h < 0 {
		h = -h
	}
	return Palette[h%int64(len(Palette))]
}

// Colors maps each tag to its colour, preserving order.
func Colors(tags []string) []TagColor {
	out := make([]TagColor, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagColor{Tag: t, Color: Color(t)})
	}
	return out
}
