package gui

import (
	"github.com/osse101/MenuForge_Go/item"
)

// Mark stamps the duplication-prevention tag onto a materialized stack and
// returns it. Stacks without metadata pass through untouched.
func Mark(stack *item.Stack) *item.Stack {
	if meta := stack.Meta(); meta != nil {
		meta.SetTag(MarkerTag, MarkerTagValue)
	}
	return stack
}

// Marked reports whether a stack carries the duplication-prevention tag.
func Marked(stack *item.Stack) bool {
	meta := stack.Meta()
	if meta == nil {
		return false
	}
	_, ok := meta.Tag(MarkerTag)
	return ok
}
