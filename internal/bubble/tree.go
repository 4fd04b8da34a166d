package bubble

// Kind is the type of a node in the visual tree.
type Kind uint8

const (
	// KindRow is the outermost horizontal strip.
	KindRow Kind = iota
	KindHStack
	KindVStack
	// KindSpacer is a flexible blank that takes up the remaining space.
	KindSpacer
	KindAvatar
	// KindBubble is the vertical stack holding the grid and the text.
	KindBubble
	KindGrid
	KindText
	KindTimestamp
	KindStatus
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "Row"
	case KindHStack:
		return "HStack"
	case KindVStack:
		return "VStack"
	case KindSpacer:
		return "Spacer"
	case KindAvatar:
		return "Avatar"
	case KindBubble:
		return "Bubble"
	case KindGrid:
		return "Grid"
	case KindText:
		return "Text"
	case KindTimestamp:
		return "Timestamp"
	case KindStatus:
		return "Status"
	default:
		return "Kind(?)"
	}
}

// Alignment is the cross-axis alignment of a stack's children, or the corner
// an overlay is pinned to.
type Alignment uint8

const (
	AlignDefault Alignment = iota
	AlignLeading
	AlignTrailing
	AlignBottom
	AlignBottomTrailing
)

// Node is an element of the visual tree. Only the fields relevant to its Kind
// are set.
type Node struct {
	Kind    Kind
	Align   Alignment
	Padding Insets

	// Width is a fixed width, or 0 for intrinsic.
	Width    int
	Priority int

	// Fill and Scheme style a bubble; Scheme also colours text and
	// timestamps.
	Fill    bool
	Scheme  Scheme
	Opacity float64

	// Hidden marks an avatar slot drawn as a same-size blank.
	Hidden bool
	Status Status
	// Count is the number of attachments in a grid.
	Count int

	Overlay  *Node
	Children []Node
}

// Walk calls fn on n and every descendant, overlays included, depth first.
// Walking stops early if fn returns false.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	if n.Overlay != nil && !n.Overlay.Walk(fn) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns all nodes of the given kind in depth-first order.
func (n Node) Find(kind Kind) []Node {
	var found []Node
	n.Walk(func(node Node) bool {
		if node.Kind == kind {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Render lays out msg and returns its visual tree.
func Render(msg Message, hideAvatar bool, ctx Context, m Measurer) Node {
	return Tree(Decide(msg, hideAvatar, ctx, m))
}

// Tree builds the visual tree for a layout.
func Tree(l Layout) Node {
	row := Node{
		Kind:     KindRow,
		Align:    AlignBottom,
		Padding:  l.Padding,
		Children: make([]Node, 0, 3),
	}

	if l.ShowAvatar {
		row.Children = append(row.Children, Node{
			Kind:    KindAvatar,
			Hidden:  l.AvatarHidden,
			Padding: Insets{Start: AvatarMargin, End: AvatarMargin},
		})
	} else {
		row.Children = append(row.Children, Node{Kind: KindSpacer})
	}

	row.Children = append(row.Children, bubbleNode(l))

	switch {
	case l.ShowStatus:
		row.Children = append(row.Children, Node{
			Kind:   KindStatus,
			Status: l.Status,
		})
	case l.Side == Leading:
		row.Children = append(row.Children, Node{Kind: KindSpacer})
	}

	return row
}

func bubbleNode(l Layout) Node {
	bubble := Node{
		Kind:    KindBubble,
		Align:   AlignLeading,
		Padding: l.BubbleInsets,
		Width:   l.Width,
		Fill:    l.Fill,
		Scheme:  l.Scheme,
	}

	if l.Attachments > 0 {
		grid := Node{
			Kind:     KindGrid,
			Priority: GridPriority,
			Count:    l.Attachments,
		}
		if l.TimestampOverlay {
			ts := timestampNode(l.Scheme)
			ts.Align = AlignBottomTrailing
			grid.Overlay = &ts
		}
		bubble.Children = append(bubble.Children, grid)
	}

	switch l.Text {
	case Inline:
		bubble.Children = append(bubble.Children, Node{
			Kind:  KindHStack,
			Align: AlignBottom,
			Children: []Node{
				textNode(l.Scheme),
				timestampNode(l.Scheme),
			},
		})
	case Stacked:
		bubble.Children = append(bubble.Children, Node{
			Kind:  KindVStack,
			Align: AlignTrailing,
			Children: []Node{
				textNode(l.Scheme),
				timestampNode(l.Scheme),
			},
		})
	}

	return bubble
}

func textNode(scheme Scheme) Node {
	return Node{
		Kind:   KindText,
		Scheme: scheme,
		Padding: Insets{
			Top:    TextInsetY,
			Bottom: TextInsetY,
			Start:  TextInsetX,
			End:    TextInsetX,
		},
	}
}

// TextBudget returns the width left for the body text inside a bubble node of
// fixed width, after the text insets and, for inline text, the timestamp's
// trailing inset. The timestamp's own text is not subtracted. It returns 0 if
// the bubble has no text or sizes to its content.
func TextBudget(bubble Node) int {
	if bubble.Kind != KindBubble || bubble.Width <= 0 {
		return 0
	}

	for _, child := range bubble.Children {
		switch child.Kind {
		case KindHStack:
			budget := bubble.Width
			for _, n := range child.Children {
				budget -= n.Padding.Start + n.Padding.End
			}
			return budget
		case KindVStack:
			text := child.Children[0]
			return bubble.Width - text.Padding.Start - text.Padding.End
		}
	}

	return 0
}

func timestampNode(scheme Scheme) Node {
	return Node{
		Kind:    KindTimestamp,
		Scheme:  scheme,
		Opacity: TimestampOpacity,
		Padding: Insets{
			End:    TimestampInsetEnd,
			Bottom: TimestampInsetBottom,
		},
	}
}
