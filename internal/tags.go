package riot

import "golang.org/x/net/html/atom"

const svgNamespace = "http://www.w3.org/2000/svg"

var voidTags = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Keygen: true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// SVG elements that never have children.
var svgVoidTags = map[string]bool{
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"path":     true,
	"polygon":  true,
	"polyline": true,
	"rect":     true,
	"stop":     true,
	"use":      true,
}

func isVoid(name, ns string) bool {
	if ns == svgNamespace {
		return svgVoidTags[name]
	}
	return voidTags[atom.Lookup([]byte(name))]
}

// isRawTag reports whether the text inside name is kept verbatim.
func isRawTag(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Pre, atom.Textarea:
		return true
	}
	return false
}

func isSvg(name string) bool {
	return atom.Lookup([]byte(name)) == atom.Svg
}
