package dllist_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/dllist"
	"github.com/sirkon/dllist/internal/mocks"
)

func TestIs(t *testing.T) {
	var nilList *dllist.List[int]

	tests := []struct {
		name      string
		candidate func(t *testing.T) any
		want      bool
	}{
		{
			name:      "list",
			candidate: func(*testing.T) any { return dllist.New(1, 2, 3) },
			want:      true,
		},
		{
			name:      "empty-list",
			candidate: func(*testing.T) any { return dllist.New[string]() },
			want:      true,
		},
		{
			name:      "slice",
			candidate: func(*testing.T) any { return []int{1, 2, 3} },
			want:      false,
		},
		{
			name:      "nil",
			candidate: func(*testing.T) any { return nil },
			want:      false,
		},
		{
			name:      "typed-nil-list",
			candidate: func(*testing.T) any { return nilList },
			want:      false,
		},
		{
			name:      "number",
			candidate: func(*testing.T) any { return 42 },
			want:      false,
		},
		{
			name:      "string",
			candidate: func(*testing.T) any { return "list" },
			want:      false,
		},
		{
			name: "empty-record",
			candidate: func(*testing.T) any {
				return map[string]any{"length": 0, "head": nil, "tail": nil}
			},
			want: true,
		},
		{
			name: "record-without-tail",
			candidate: func(*testing.T) any {
				return map[string]any{"length": 0, "head": nil}
			},
			want: false,
		},
		{
			name: "record-with-nodes",
			candidate: func(*testing.T) any {
				n := map[string]any{"value": 1, "next": nil, "prev": nil}
				return map[string]any{"length": 1, "head": n, "tail": n}
			},
			want: true,
		},
		{
			name: "record-with-float-length",
			candidate: func(*testing.T) any {
				n := map[string]any{"value": 1, "next": nil, "prev": nil}
				return map[string]any{"length": 1.0, "head": n, "tail": n}
			},
			want: true,
		},
		{
			name: "record-with-null-head",
			candidate: func(*testing.T) any {
				return map[string]any{"length": 2, "head": nil, "tail": nil}
			},
			want: false,
		},
		{
			name: "record-with-broken-tail",
			candidate: func(*testing.T) any {
				head := map[string]any{"value": 1, "next": nil, "prev": nil}
				tail := map[string]any{"value": 2, "next": nil}
				return map[string]any{"length": 2, "head": head, "tail": tail}
			},
			want: false,
		},
		{
			name: "int-record",
			candidate: func(*testing.T) any {
				return map[string]int{"length": 0, "head": 0, "tail": 0}
			},
			want: true,
		},
		{
			name: "int-record-with-scalar-nodes",
			candidate: func(*testing.T) any {
				return map[string]int{"length": 1, "head": 0, "tail": 0}
			},
			want: false,
		},
		{
			name: "record-with-typed-nodes",
			candidate: func(*testing.T) any {
				n := map[string]int{"value": 1, "next": 0, "prev": 0}
				return map[string]any{"length": 1, "head": n, "tail": n}
			},
			want: true,
		},
		{
			name: "record-with-negative-length",
			candidate: func(*testing.T) any {
				return map[string]any{"length": -1, "head": nil, "tail": nil}
			},
			want: true,
		},
		{
			name: "nil-record",
			candidate: func(*testing.T) any {
				var rec map[string]any
				return rec
			},
			want: false,
		},
		{
			name: "int-keyed-map",
			candidate: func(*testing.T) any {
				return map[int]any{0: nil, 1: nil, 2: nil}
			},
			want: false,
		},
		{
			name: "linked-implementation",
			candidate: func(t *testing.T) any {
				ctrl := gomock.NewController(t)
				b := mocks.NewBoundaryMock(ctrl)
				m := mocks.NewLinkedMock(ctrl)
				m.EXPECT().Len().Return(1)
				m.EXPECT().Front().Return(b)
				m.EXPECT().Back().Return(b)
				return m
			},
			want: true,
		},
		{
			name: "empty-linked-implementation",
			candidate: func(t *testing.T) any {
				ctrl := gomock.NewController(t)
				m := mocks.NewLinkedMock(ctrl)
				m.EXPECT().Len().Return(0)
				return m
			},
			want: true,
		},
		{
			name: "linked-implementation-without-head",
			candidate: func(t *testing.T) any {
				ctrl := gomock.NewController(t)
				m := mocks.NewLinkedMock(ctrl)
				m.EXPECT().Len().Return(3)
				m.EXPECT().Front().Return(nil)
				m.EXPECT().Back().Return(nil).AnyTimes()
				return m
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dllist.Is(tt.candidate(t)); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}
