package durstr_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucrnz/durstr"
)

func ExampleParse() {
	d, err := durstr.Parse("12 minutes, 21 seconds")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)

	d, _ = durstr.Parse("1hr 2min 3sec")
	fmt.Println(d.Seconds())
	// Output:
	// 12m21s
	// 3723
}

func ExampleNew() {
	units := durstr.DefaultUnits()
	if err := units.AddUnit(24*time.Hour, "d", "day", "days"); err != nil {
		panic(err)
	}
	p := durstr.New(durstr.Options{IgnoreCase: true, Units: units})

	d, err := p.Parse("4 DAYS, 1.5 hours")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 97h30m0s
}

func ExampleParseError() {
	_, err := durstr.Parse("5 fortnights")

	var pe *durstr.ParseError
	if errors.As(err, &pe) && errors.Is(err, durstr.ErrUnknownUnit) {
		fmt.Println(pe.Unit, pe.Offset)
	}
	fmt.Println(err)
	// Output:
	// fortnights 2
	// durstr: unknown unit "fortnights" at offset 2
}
