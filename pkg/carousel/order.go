package carousel

import "fmt"

// DisplayOrder 轮播的显示顺序（ID 的循环序列）
//
// 与注册表的生命周期相互独立，允许重复 ID。
//
// 同时记录两个游标：selected（当前居中的下标）和 settled（上一次停稳时的下标）。
// 在游标处或之前插入/删除时游标随之 ±1，保证结构编辑后居中的仍是同一个逻辑条目，
// 否则焦点会在插入/删除后悄悄跳到别的条目上。
type DisplayOrder struct {
	ids      []ID
	selected int
	settled  int
	revision uint64
}

// NewDisplayOrder 创建显示顺序
func NewDisplayOrder(ids ...ID) *DisplayOrder {
	o := &DisplayOrder{ids: make([]ID, 0, len(ids))}
	o.ids = append(o.ids, ids...)
	return o
}

// Len 返回条目数量
func (o *DisplayOrder) Len() int {
	return len(o.ids)
}

// At 返回下标处的 ID，越界时返回 InvalidID
func (o *DisplayOrder) At(index int) ID {
	if index < 0 || index >= len(o.ids) {
		return InvalidID
	}
	return o.ids[index]
}

// IDs 返回顺序副本
func (o *DisplayOrder) IDs() []ID {
	out := make([]ID, len(o.ids))
	copy(out, o.ids)
	return out
}

// Selected 返回当前居中条目的下标
func (o *DisplayOrder) Selected() int {
	return o.selected
}

// Settled 返回上一次停稳时居中条目的下标
func (o *DisplayOrder) Settled() int {
	return o.settled
}

// Revision 每次结构修改递增，引擎据此在帧间重新对齐连续偏移
func (o *DisplayOrder) Revision() uint64 {
	return o.revision
}

// PushFront 插入到最前
func (o *DisplayOrder) PushFront(id ID) {
	o.insert(0, id)
}

// PushBack 追加到末尾
func (o *DisplayOrder) PushBack(id ID) {
	o.insert(len(o.ids), id)
}

// InsertBefore 在 index 之前插入，index ∈ [0, Len()]
func (o *DisplayOrder) InsertBefore(index int, id ID) error {
	if index < 0 || index > len(o.ids) {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrIndexOutOfRange, index, len(o.ids))
	}
	o.insert(index, id)
	return nil
}

// EraseAt 删除 index 处的条目，index ∈ [0, Len())
func (o *DisplayOrder) EraseAt(index int) error {
	if index < 0 || index >= len(o.ids) {
		return fmt.Errorf("%w: erase at %d (len %d)", ErrIndexOutOfRange, index, len(o.ids))
	}

	o.ids = append(o.ids[:index], o.ids[index+1:]...)
	n := len(o.ids)
	o.selected = shiftOnErase(o.selected, index, n)
	o.settled = shiftOnErase(o.settled, index, n)
	o.revision++
	return nil
}

// IndexOf 返回 id 第一次出现的下标，不存在时返回 -1
func (o *DisplayOrder) IndexOf(id ID) int {
	for i, v := range o.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (o *DisplayOrder) insert(index int, id ID) {
	wasEmpty := len(o.ids) == 0

	o.ids = append(o.ids, InvalidID)
	copy(o.ids[index+1:], o.ids[index:])
	o.ids[index] = id

	if wasEmpty {
		o.selected, o.settled = 0, 0
	} else {
		o.selected = shiftOnInsert(o.selected, index)
		o.settled = shiftOnInsert(o.settled, index)
	}
	o.revision++
}

// setSelected 由引擎在每帧解析出居中下标后写回
func (o *DisplayOrder) setSelected(index int) {
	o.selected = index
}

// setSettled 由引擎在开始吸附时写回
func (o *DisplayOrder) setSettled(index int) {
	o.settled = index
}

func shiftOnInsert(cursor, index int) int {
	if index <= cursor {
		return cursor + 1
	}
	return cursor
}

func shiftOnErase(cursor, index, n int) int {
	if n == 0 {
		return 0
	}
	if index <= cursor {
		cursor--
	}
	return wrapIndex(cursor, n)
}
