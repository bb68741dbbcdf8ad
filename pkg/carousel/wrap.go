package carousel

import "math"

// Wrap 取 floor-mod：对任意实数 x 与正数 m，结果落在 [0, m)
//
// 拖过零点时偏移经常为负，截断取模会得到负的余数并破坏下标计算，
// 因此负数要映射为 m + (x mod m)。边界值 m 映射为 0。
func Wrap(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// -tiny + m 在浮点下可能舍入为 m
	if r >= m {
		r = 0
	}
	return r
}

// wrapIndex 整数下标的 floor-mod
func wrapIndex(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// inc 下标加一并在 [0, n) 内循环
func inc(i, n int) int {
	if i+1 >= n {
		return 0
	}
	return i + 1
}

// dec 下标减一并在 [0, n) 内循环
func dec(i, n int) int {
	if i-1 < 0 {
		return n - 1
	}
	return i - 1
}
