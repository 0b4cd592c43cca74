package strutil_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/strutil"
)

func ExampleCamelize() {
	fmt.Println(strutil.Camelize("foo-bar-baz"))
	fmt.Println(strutil.Camelize("foo_bar_baz", false))
	// Output:
	// FooBarBaz
	// fooBarBaz
}
