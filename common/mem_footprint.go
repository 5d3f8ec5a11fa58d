// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryFootprint describes the memory consumption of a container structure.
type MemoryFootprint struct {
	value    uintptr
	note     string
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a new MemoryFootprint instance for a container
// consuming the given number of bytes, excluding subcomponents.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: make(map[string]*MemoryFootprint),
	}
}

// AddChild attaches the MemoryFootprint of a subcomponent. Nil children are
// ignored.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if child == nil {
		return
	}
	mf.children[name] = child
}

// SetNote attaches a free-form annotation printed along the footprint summary.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value provides the amount of bytes consumed by the container itself,
// excluding its subcomponents.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the amount of bytes consumed by the container including all
// its subcomponents. Footprints reachable through more than one path are
// counted once.
func (mf *MemoryFootprint) Total() uintptr {
	visited := make(map[*MemoryFootprint]bool)
	return totalOf(mf, visited)
}

func totalOf(mf *MemoryFootprint, visited map[*MemoryFootprint]bool) (total uintptr) {
	if visited[mf] {
		return 0
	}
	visited[mf] = true
	total = mf.value
	for _, child := range mf.children {
		total += totalOf(child, visited)
	}
	return total
}

// String provides the footprint as a tree summary, one line per component,
// children sorted by name.
func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.describe(&sb, ".")
	return sb.String()
}

func (mf *MemoryFootprint) describe(sb *strings.Builder, path string) {
	sb.WriteString(memoryAmountToString(mf.Total()))
	sb.WriteRune(' ')
	sb.WriteString(path)
	if mf.note != "" {
		fmt.Fprintf(sb, " (%s)", mf.note)
	}
	sb.WriteRune('\n')
	names := make([]string, 0, len(mf.children))
	for name := range mf.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mf.children[name].describe(sb, path+"/"+name)
	}
}

func memoryAmountToString(bytes uintptr) string {
	const unit = 1024
	const prefixes = "KMGTPE"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp+1 < len(prefixes); n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), prefixes[exp])
}
