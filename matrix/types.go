// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every kernel.
// This file contains ONLY the scalar constraint and the dimension types.
// Dimensions are encoded as zero-size types so that shape agreement for
// Add/Sub/Mul and square-only operations is checked by the compiler.
package matrix

import "golang.org/x/exp/constraints"

// Float is the scalar constraint: float32, float64 and types derived from them.
type Float interface {
	constraints.Float
}

// Dim is a compile-time dimension. Implementations are zero-size types whose
// Len method returns a constant; Len() <= 0 is rejected with ErrBadShape.
//
// Callers may declare their own:
//
//	type D12 struct{}
//
//	func (D12) Len() int { return 12 }
type Dim interface {
	Len() int
}

// Predefined dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }
func (D9) Len() int { return 9 }

// lenOf returns the length carried by the dimension type D.
func lenOf[D Dim]() int {
	var d D
	return d.Len()
}
