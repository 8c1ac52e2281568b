// Package sequence 提供有序列表的纯函数重排操作与拖拽手势状态机。
package sequence

// Move 返回一个新切片：把 from 处的元素取出后插入到 to 处，
// 其余元素保持相对顺序。from == to 或下标越界时返回原序列的拷贝。
// 入参不会被修改。
func Move[T any](seq []T, from, to int) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	if from == to || from < 0 || to < 0 || from >= len(seq) || to >= len(seq) {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// IndexOf 返回第一个满足 match 的下标，找不到时返回 -1。
func IndexOf[T any](seq []T, match func(T) bool) int {
	for i, v := range seq {
		if match(v) {
			return i
		}
	}
	return -1
}

// Reorder 把手势中的 source/target id 解析成下标后执行 Move。
// 原地放下或任意一方不存在时视为取消，返回原序列的拷贝且 moved 为 false。
func Reorder[T any](seq []T, id func(T) string, g Gesture) (out []T, moved bool) {
	from := IndexOf(seq, func(v T) bool { return id(v) == g.SourceID })
	to := IndexOf(seq, func(v T) bool { return id(v) == g.TargetID })
	if from < 0 || to < 0 || from == to {
		return Move(seq, 0, 0), false
	}
	return Move(seq, from, to), true
}
