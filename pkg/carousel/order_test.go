package carousel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisplayOrder_Mutations(t *testing.T) {
	o := NewDisplayOrder(1, 2, 3)
	o.PushFront(10)
	o.PushBack(20)
	if err := o.InsertBefore(2, 30); err != nil {
		t.Fatalf("InsertBefore 失败: %v", err)
	}
	if err := o.EraseAt(1); err != nil {
		t.Fatalf("EraseAt 失败: %v", err)
	}

	want := []ID{10, 30, 2, 3, 20}
	if diff := cmp.Diff(want, o.IDs()); diff != "" {
		t.Errorf("顺序不匹配 (-want +got):\n%s", diff)
	}
	if o.Len() != 5 {
		t.Errorf("Len() = %d, 期望 5", o.Len())
	}
	if o.At(-1) != InvalidID || o.At(5) != InvalidID {
		t.Error("越界 At 应返回 InvalidID")
	}
	if o.IndexOf(3) != 3 || o.IndexOf(99) != -1 {
		t.Errorf("IndexOf(3) = %d, IndexOf(99) = %d", o.IndexOf(3), o.IndexOf(99))
	}
}

func TestDisplayOrder_IDsIsCopy(t *testing.T) {
	o := NewDisplayOrder(1, 2)
	ids := o.IDs()
	ids[0] = 99
	if o.At(0) != 1 {
		t.Errorf("修改 IDs() 的返回值影响了内部状态: At(0) = %d", o.At(0))
	}
}

func TestDisplayOrder_Duplicates(t *testing.T) {
	o := NewDisplayOrder(7, 7)
	o.PushBack(7)
	if o.Len() != 3 {
		t.Errorf("允许重复 ID, Len() = %d, 期望 3", o.Len())
	}
}

func TestDisplayOrder_OutOfRange(t *testing.T) {
	o := NewDisplayOrder(1, 2)

	tests := []struct {
		name string
		op   func() error
	}{
		{"插入下标为负", func() error { return o.InsertBefore(-1, 5) }},
		{"插入下标超过长度", func() error { return o.InsertBefore(3, 5) }},
		{"删除下标为负", func() error { return o.EraseAt(-1) }},
		{"删除下标等于长度", func() error { return o.EraseAt(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("错误 = %v, 期望 ErrIndexOutOfRange", err)
			}
		})
	}

	if diff := cmp.Diff([]ID{1, 2}, o.IDs()); diff != "" {
		t.Errorf("失败的操作修改了顺序 (-want +got):\n%s", diff)
	}
}

func TestDisplayOrder_CursorShifts(t *testing.T) {
	tests := []struct {
		name         string
		selected     int
		op           func(o *DisplayOrder) error
		wantSelected int
	}{
		{"在游标之前插入", 2, func(o *DisplayOrder) error { return o.InsertBefore(1, 9) }, 3},
		{"在游标处插入", 2, func(o *DisplayOrder) error { return o.InsertBefore(2, 9) }, 3},
		{"在游标之后插入", 2, func(o *DisplayOrder) error { return o.InsertBefore(3, 9) }, 2},
		{"插入到最前", 0, func(o *DisplayOrder) error { o.PushFront(9); return nil }, 1},
		{"追加到末尾", 4, func(o *DisplayOrder) error { o.PushBack(9); return nil }, 4},
		{"删除游标之前", 2, func(o *DisplayOrder) error { return o.EraseAt(0) }, 1},
		{"删除游标之后", 2, func(o *DisplayOrder) error { return o.EraseAt(4) }, 2},
		{"删除游标本身", 2, func(o *DisplayOrder) error { return o.EraseAt(2) }, 1},
		{"删除第一个且游标为0", 0, func(o *DisplayOrder) error { return o.EraseAt(0) }, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewDisplayOrder(1, 2, 3, 4, 5)
			o.setSelected(tt.selected)
			o.setSettled(tt.selected)
			before := o.At(tt.selected)

			if err := tt.op(o); err != nil {
				t.Fatalf("操作失败: %v", err)
			}

			if o.Selected() != tt.wantSelected {
				t.Errorf("Selected() = %d, 期望 %d", o.Selected(), tt.wantSelected)
			}
			if o.Settled() != tt.wantSelected {
				t.Errorf("Settled() = %d, 期望 %d", o.Settled(), tt.wantSelected)
			}
			// 游标没有被删掉时，居中的仍是同一个逻辑条目
			if o.IndexOf(before) >= 0 && o.At(o.Selected()) != before {
				t.Errorf("居中条目从 %d 变成了 %d", before, o.At(o.Selected()))
			}
		})
	}
}

func TestDisplayOrder_EmptyTransitions(t *testing.T) {
	o := NewDisplayOrder(1)
	if err := o.EraseAt(0); err != nil {
		t.Fatalf("EraseAt 失败: %v", err)
	}
	if o.Len() != 0 || o.Selected() != 0 {
		t.Errorf("清空后 Len=%d Selected=%d", o.Len(), o.Selected())
	}

	o.PushBack(5)
	if o.Selected() != 0 || o.At(0) != 5 {
		t.Errorf("重新插入后 Selected=%d At(0)=%d", o.Selected(), o.At(0))
	}
}

func TestDisplayOrder_Revision(t *testing.T) {
	o := NewDisplayOrder()
	r0 := o.Revision()

	o.PushBack(1)
	o.PushFront(2)
	_ = o.InsertBefore(1, 3)
	_ = o.EraseAt(0)
	if got := o.Revision() - r0; got != 4 {
		t.Errorf("4 次修改后 Revision 增加了 %d", got)
	}

	_ = o.EraseAt(10)
	if got := o.Revision() - r0; got != 4 {
		t.Errorf("失败的修改不应增加 Revision, 增加了 %d", got)
	}
}
