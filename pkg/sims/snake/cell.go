package snake

import (
	"fmt"

	"ca-engine/pkg/core"
)

// Legacy numeric encoding of snake cells in the value layer.
const (
	FoodValue = 5
	HeadValue = 10
)

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFood
	KindHead
	KindBody
	KindBorder
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFood:
		return "food"
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindBorder:
		return "border"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Cell is the decoded view of one value-layer entry. Segment counts from the
// head (0) towards the tail and is only meaningful for KindHead and KindBody.
type Cell struct {
	Kind    Kind
	Segment int
}

// Decode maps a grid value to its tagged variant. Values without a snake
// meaning (Life cells, unknown codes) decode as empty.
func Decode(v int) Cell {
	switch {
	case v == core.Border:
		return Cell{Kind: KindBorder}
	case v == FoodValue:
		return Cell{Kind: KindFood}
	case v == HeadValue:
		return Cell{Kind: KindHead}
	case v > HeadValue:
		return Cell{Kind: KindBody, Segment: v - HeadValue}
	}
	return Cell{Kind: KindEmpty}
}

// Encode projects c back to the numeric grid value.
func (c Cell) Encode() int {
	switch c.Kind {
	case KindBorder:
		return core.Border
	case KindFood:
		return FoodValue
	case KindHead:
		return HeadValue
	case KindBody:
		return HeadValue + c.Segment
	}
	return core.Empty
}

// Segment returns the cell for the k-th segment counted from the head.
func Segment(k int) Cell {
	if k == 0 {
		return Cell{Kind: KindHead}
	}
	return Cell{Kind: KindBody, Segment: k}
}
