package adapter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tangobridge/tangobridge/pkg/tango"
)

func TestExtractShape(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want []int
	}{
		{"image", 10, 15, []int{10, 15}},
		{"spectrum", 10, 0, []int{10}},
		{"empty", 0, 0, []int{}},
		{"y only", 0, 15, []int{15}},
		{"scalar", 1, 0, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractShape(&tango.DeviceAttribute{DimX: tt.x, DimY: tt.y})
			if got == nil {
				t.Fatal("ExtractShape returned nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractShape mismatch (-want +got):\n%s", diff)
			}

			got = ExtractShapeFromConfig(&tango.AttributeInfo{MaxDimX: tt.x, MaxDimY: tt.y})
			if got == nil {
				t.Fatal("ExtractShapeFromConfig returned nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractShapeFromConfig mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
