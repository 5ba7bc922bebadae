package cast_test

import (
	"fmt"
	"strconv"

	"strict-record/cast"
)

type moreThanError interface {
	error
	More()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }
func variadic(...int) string          { panic("not implemented") }

func full(int) (string, bool, error)          { panic("not implemented") }
func customError(int) (string, moreThanError) { panic("not implemented") }

func ExampleParseCaster() {
	desc, err := cast.ParseCaster(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = cast.ParseCaster(strconv.Itoa)
	fmt.Println(err, desc, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = cast.ParseCaster(strconv.Atoi)
	fmt.Println(err, desc, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = cast.ParseCaster(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	_, err = cast.ParseCaster(empty)
	fmt.Println(err)

	_, err = cast.ParseCaster(wrong)
	fmt.Println(err)

	_, err = cast.ParseCaster(variadic)
	fmt.Println(err)

	_, err = cast.ParseCaster(42)
	fmt.Println(err)

	// Output:
	// <nil> cast_test full int string true true
	// <nil> strconv.Itoa int string false false
	// <nil> strconv.Atoi string int false true
	// <nil> cast_test customError int string false true
	// provided function is not a recognizable caster
	// provided function is not a recognizable caster
	// provided function is not a recognizable caster
	// provided caster is not a function
}
