package tinyregex_test

import (
	"fmt"

	"github.com/coregx/tinyregex"
)

func ExampleCompile() {
	re, err := tinyregex.Compile("[0-9]+")
	if err != nil {
		fmt.Println("compile error:", err)
		return
	}

	fmt.Println(re.MatchString("order 123"))
	fmt.Println(re.MatchString("no digits here"))
	// Output:
	// true
	// false
}

func ExampleRegex_FullMatchString() {
	re := tinyregex.MustCompile("a*4.+hi")

	fmt.Println(re.FullMatchString("aaaaaa4uhi"))
	fmt.Println(re.FullMatchString("4uhi"))
	fmt.Println(re.FullMatchString("meow"))
	// Output:
	// true
	// true
	// false
}

func ExampleRegex_FindString() {
	re := tinyregex.MustCompile("ab+")

	start, end, ok := re.FindString("xxabbby")
	fmt.Println(start, end, ok)
	// Output:
	// 2 4 true
}

func ExampleRegex_MatchString() {
	re := tinyregex.MustCompile("[a-z0-9]+")

	fmt.Println(re.MatchString("HELLO"))
	fmt.Println(re.MatchString("hello123"))
	// Output:
	// false
	// true
}
