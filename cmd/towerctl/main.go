// Command towerctl is a line-oriented REPL over a skiplist.List[int],
// for manually exercising and inspecting the tower (spec.md §6).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"skiptower/pkg/skiplist"
)

const help = `commands:
  i <idx> <int>   insert
  f <int>         push_front
  b <int>         push_back
  g <idx>         get
  r <idx>         remove
  l               print size
  p               visualize
  c               clear
  x               exit
  h               this help
`

func main() {
	l := skiplist.New[int]()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print(help)
	fmt.Print("> ")
	for scanner.Scan() {
		run(l, scanner.Text())
		fmt.Print("> ")
	}
}

func run(l *skiplist.List[int], line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "i":
		idx, v, err := parseTwo(fields)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := l.Insert(idx, v); err != nil {
			fmt.Println(err)
		}
	case "f":
		v, err := parseOne(fields)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := l.PushFront(v); err != nil {
			fmt.Println(err)
		}
	case "b":
		v, err := parseOne(fields)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := l.PushBack(v); err != nil {
			fmt.Println(err)
		}
	case "g":
		idx, err := parseIdx(fields)
		if err != nil {
			fmt.Println(err)
			return
		}
		v, ok := l.Get(idx)
		if !ok {
			fmt.Println("fail to get")
			return
		}
		fmt.Println(*v)
	case "r":
		idx, err := parseIdx(fields)
		if err != nil {
			fmt.Println(err)
			return
		}
		v, err := l.Remove(idx)
		if err != nil {
			fmt.Println("fail to remove")
			return
		}
		fmt.Println(v)
	case "l":
		fmt.Println(l.Len())
	case "p":
		l.Visualize(os.Stdout)
	case "c":
		l.Clear()
	case "x":
		os.Exit(0)
	case "h":
		fmt.Print(help)
	default:
		fmt.Print(help)
	}
}

func parseIdx(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: %s <idx>", fields[0])
	}
	return strconv.Atoi(fields[1])
}

func parseOne(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: %s <int>", fields[0])
	}
	return strconv.Atoi(fields[1])
}

func parseTwo(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: i <idx> <int>")
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, err
	}
	return idx, v, nil
}
