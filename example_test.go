package flexpath_test

import (
	"errors"
	"fmt"

	"github.com/meigma/flexpath"
)

func ExampleFlexPath_Resolve() {
	p, err := flexpath.NewCommon("a/b").Resolve("..")
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: a
}

func ExampleFromFragments() {
	p, err := flexpath.FromFragments([]string{"a/b", "c/d", "e/f", ".."}, flexpath.Common)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: a/b/c/d/e
}

func ExampleFlexPath_Relative() {
	from := flexpath.NewCommon("/a/b")
	rel, err := from.Relative(flexpath.NewCommon("/c/d"))
	if err != nil {
		panic(err)
	}
	fmt.Println(rel)
	// Output: ../../c/d
}

func ExampleFlexPath_Relative_differentDrives() {
	from := flexpath.MustNew(`C:\work`, flexpath.Windows)
	_, err := from.RelativeTo(`D:\backup`)
	fmt.Println(errors.Is(err, flexpath.ErrDifferentRoot))
	// Output: true
}

func ExampleNormalizePath() {
	s, err := flexpath.NormalizePath(`C:/Users//me/./docs/..`, flexpath.Windows)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: C:\Users\me
}
