package ternary

// Pow3 returns 3^k for k ≥ 0.
func Pow3(k int) int {
	p := 1
	for ; k > 0; k-- {
		p *= 3
	}
	return p
}

// Complement swaps the base-3 digits 1 and 2 of x. Zero digits stay zero,
// so Complement(Complement(x)) == x.
func Complement(x int) int {
	var (
		out   int
		place = 1
	)
	for ; x > 0; x /= 3 {
		switch x % 3 {
		case 1:
			out += 2 * place
		case 2:
			out += place
		}
		place *= 3
	}
	return out
}

// Digit returns base-3 digit i of x, counting from the least significant
// digit (i = 0).
func Digit(x, i int) int {
	return x / Pow3(i) % 3
}

// Digits returns the k base-3 digits of x, most significant first.
func Digits(x, k int) []int {
	out := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = x % 3
		x /= 3
	}
	return out
}

// signed maps the k digits of x (least significant first) to pan sides:
// +1 for the left pan, -1 for the right pan, 0 for off the scale.
func signed(x, k int) []int {
	out := make([]int, k)
	for i := 0; i < k; i++ {
		switch x % 3 {
		case 1:
			out[i] = 1
		case 2:
			out[i] = -1
		}
		x /= 3
	}
	return out
}

// unsigned is the inverse of signed.
func unsigned(v []int) int {
	var (
		x     int
		place = 1
	)
	for _, d := range v {
		switch d {
		case 1:
			x += place
		case -1:
			x += 2 * place
		}
		place *= 3
	}
	return x
}
