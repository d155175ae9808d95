package orchestrator

// galleryCursor is the highlighted entry of the pattern tree. patternIdx is -1
// when a type header is highlighted.
type galleryCursor struct {
	typeIdx    int
	patternIdx int
	expanded   []bool
}

func newGalleryCursor(types int) galleryCursor {
	expanded := make([]bool, types)
	for i := range expanded {
		expanded[i] = true
	}
	return galleryCursor{patternIdx: -1, expanded: expanded}
}

// focus moves the highlight to the current selection, opening its type.
func (g *galleryCursor) focus(typeIdx, patternIdx int) {
	g.typeIdx = typeIdx
	g.patternIdx = patternIdx
	if patternIdx >= 0 {
		g.expanded[typeIdx] = true
	}
}

// setExpanded opens or closes the highlighted type. Closing moves the
// highlight up to the type header.
func (g *galleryCursor) setExpanded(open bool) {
	g.expanded[g.typeIdx] = open
	if !open {
		g.patternIdx = -1
	}
}

// GalleryNode is one visible row of the pattern tree.
type GalleryNode struct {
	TypeIdx    int
	PatternIdx int
	Name       string
	Expanded   bool
	// Last marks the pattern most recently placed or selected.
	Last    bool
	Focused bool
}

// IsHeader reports whether the node is a pattern type rather than a pattern.
func (n GalleryNode) IsHeader() bool { return n.PatternIdx < 0 }

// GalleryNodes flattens the tree into its visible rows.
func (o *Orchestrator) GalleryNodes() []GalleryNode {
	var nodes []GalleryNode
	for ti, t := range o.catalog {
		open := o.gallery.expanded[ti]
		nodes = append(nodes, GalleryNode{
			TypeIdx:    ti,
			PatternIdx: -1,
			Name:       t.Name,
			Expanded:   open,
			Focused:    o.gallery.typeIdx == ti && o.gallery.patternIdx < 0,
		})
		if !open {
			continue
		}
		for pi, p := range t.Patterns {
			nodes = append(nodes, GalleryNode{
				TypeIdx:    ti,
				PatternIdx: pi,
				Name:       p.Name,
				Last:       o.patternType == ti && o.lastPattern == pi,
				Focused:    o.gallery.typeIdx == ti && o.gallery.patternIdx == pi,
			})
		}
	}
	return nodes
}

func (o *Orchestrator) galleryMove(delta int) {
	nodes := o.GalleryNodes()
	at := 0
	for i, n := range nodes {
		if n.Focused {
			at = i
			break
		}
	}
	at += delta
	if at < 0 || at >= len(nodes) {
		return
	}
	o.gallery.typeIdx = nodes[at].TypeIdx
	o.gallery.patternIdx = nodes[at].PatternIdx
}

// gallerySelect commits the highlighted entry. A pattern becomes the last
// pattern of its type; a header only switches the type.
func (o *Orchestrator) gallerySelect() {
	ti, pi := o.gallery.typeIdx, o.gallery.patternIdx
	if ti != o.patternType || pi != o.lastPattern {
		o.rotation = 0
	}
	o.patternType = ti
	o.lastPattern = pi
}
