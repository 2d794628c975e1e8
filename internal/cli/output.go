package cli

import (
	"fmt"
	"io"

	"github.com/agbru/flowsample/internal/list"
	"github.com/agbru/flowsample/internal/numeric"
)

// Output labels.
const (
	MaxLabel       = "较大的数字是: "
	SumLabel       = "数组的和为: "
	ListLabel      = "链表节点值: "
	CountdownLabel = "递归打印: "
)

// DisplayMax prints the comparator result.
func DisplayMax(out io.Writer, value int) error {
	_, err := fmt.Fprintf(out, "%s%d\n", MaxLabel, value)
	return err
}

// DisplaySum prints the summation result.
func DisplaySum(out io.Writer, sum int) error {
	_, err := fmt.Fprintf(out, "%s%d\n", SumLabel, sum)
	return err
}

// DisplayList prints every list value on one line.
func DisplayList(out io.Writer, l *list.List) error {
	if _, err := io.WriteString(out, ListLabel); err != nil {
		return err
	}
	if err := l.Print(out); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}

// DisplayFibonacci prints F(n).
func DisplayFibonacci(out io.Writer, n, value int) error {
	_, err := fmt.Fprintf(out, "Fibonacci(%d) = %d\n", n, value)
	return err
}

// DisplayCountdown prints the countdown from n on one line.
func DisplayCountdown(out io.Writer, n int) error {
	if _, err := io.WriteString(out, CountdownLabel); err != nil {
		return err
	}
	if err := numeric.CountdownPrint(out, n); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}
