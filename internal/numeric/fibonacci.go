package numeric

// Fibonacci returns n for n <= 1 and Fibonacci(n-1) + Fibonacci(n-2)
// otherwise. It runs in exponential time.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// fibonacciIterative walks the sequence forward with two accumulators.
func fibonacciIterative(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// fibonacciMemo fills a table of every F(k) up to n, smallest first, so the
// stack depth does not grow with n.
func fibonacciMemo(n int) int {
	if n <= 1 {
		return n
	}
	memo := make([]int, n+1)
	memo[1] = 1
	for k := 2; k <= n; k++ {
		memo[k] = memo[k-1] + memo[k-2]
	}
	return memo[n]
}
