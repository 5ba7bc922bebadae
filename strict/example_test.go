package strict_test

import (
	"errors"
	"fmt"
	"time"

	"strict-record/strict"
)

func ExampleDefine() {
	type Job struct {
		Name    string        `strict:"name,required"`
		Retries int           `strict:"retries"`
		Timeout time.Duration `strict:"timeout"`
	}

	jobs := strict.MustDefine[Job]()

	job, err := jobs.New(strict.Named(map[string]any{
		"name":    "backup",
		"retries": "3",
		"timeout": "1m",
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%+v\n", job)
	fmt.Println(jobs.Fields())

	// Output:
	// {Name:backup Retries:3 Timeout:1m0s}
	// [name retries timeout]
}

func ExampleCastError() {
	_, err := strict.New[Foo](strict.Named(map[string]any{"bar": "notabool"}))

	var castErr *strict.CastError
	if errors.As(err, &castErr) {
		fmt.Println(castErr.Field, castErr.Type, castErr.Value)
	}

	fmt.Println(err)

	// Output:
	// bar bool notabool
	// field bar: `notabool` of type `string` is not castable to `bool`: value is not a recognizable boolean: "notabool"
}

func ExampleOptional() {
	type Query struct {
		Limit strict.Optional[int] `strict:"limit"`
	}

	for _, raw := range []any{nil, "25"} {
		q, err := strict.New[Query](strict.Named(map[string]any{"limit": raw}))
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Println(q.Limit.Get())
	}

	// Output:
	// 0 false
	// 25 true
}

func ExampleToMap() {
	m, err := strict.ToMap(Foo{Bar: true, Foo: 5})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m)

	// Output: map[bar:true foo:5]
}
