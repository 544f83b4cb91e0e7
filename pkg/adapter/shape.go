package adapter

import (
	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

// ExtractShape returns the shape of a reading: dim_x if non-zero, then
// dim_y if non-zero. The result is never nil.
func ExtractShape(r *tango.DeviceAttribute) []int {
	return shapeOf(r.DimX, r.DimY)
}

// ExtractShapeFromConfig returns the maximum shape declared by an
// attribute configuration.
func ExtractShapeFromConfig(info *tango.AttributeInfo) []int {
	return shapeOf(info.MaxDimX, info.MaxDimY)
}

func shapeOf(x, y int) []int {
	shape := make([]int, 0, 2)
	if x != 0 {
		shape = append(shape, x)
	}
	if y != 0 {
		shape = append(shape, y)
	}
	return shape
}

func placeholderKey(shape []int) acquire.DataKey {
	return acquire.DataKey{
		Shape:  shape,
		Dtype:  acquire.DtypeNumber,
		Source: acquire.PlaceholderText,
		Unit:   acquire.PlaceholderText,
	}
}
