package main

// ========== 顯示順序 ==========
//
// DisplayOrder 只記錄「目前用什麼順序呈現」：內容是原始索引的排列，
// 拖曳排序只改這裡，行程資料本身永遠不動。

type DisplayOrder struct {
	items []int
}

// Reset 重設成 [0, n) 的恆等排列，接受新行程時呼叫
func (o *DisplayOrder) Reset(n int) {
	o.items = make([]int, n)
	for i := range o.items {
		o.items[i] = i
	}
}

// Move 把 fromID 對應的元素搬到 toID 目前的位置，中間的元素往旁邊挪一格。
// 兩個 id 相同或任一個不存在就什麼都不做。
func (o *DisplayOrder) Move(fromID, toID int) {
	if fromID == toID {
		return
	}
	oldIdx := o.indexOf(fromID)
	newIdx := o.indexOf(toID)
	if oldIdx < 0 || newIdx < 0 {
		return
	}

	moved := o.items[oldIdx]
	o.items = append(o.items[:oldIdx], o.items[oldIdx+1:]...)
	o.items = append(o.items, 0)
	copy(o.items[newIdx+1:], o.items[newIdx:])
	o.items[newIdx] = moved
}

// Current 回傳目前順序的複本，給畫面層照著走訪
func (o *DisplayOrder) Current() []int {
	out := make([]int, len(o.items))
	copy(out, o.items)
	return out
}

func (o *DisplayOrder) indexOf(id int) int {
	for i, v := range o.items {
		if v == id {
			return i
		}
	}
	return -1
}
