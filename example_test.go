package fusionfmt_test

import (
	"context"
	"fmt"
	"log"

	fusionfmt "github.com/dkarlsen/fusionfmt"
)

func ExampleService_Format() {
	svc := fusionfmt.New(fusionfmt.WithToolDB(fusionfmt.ToolDB{
		"udrill50": {Display: "(U-DRILL 50MM)", Type: "G97", Speed: "450", Feed: ".12"},
	}))

	result, err := svc.Format(context.Background(), fusionfmt.Input{
		Source: "%\nO0042\nG90G94\nG18\nT0700\n(TOOL_KEY=UDRILL50)\nG0X50.\nM30\n%",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Stats.ProgramNumber)
	fmt.Println(result.Lines[len(result.Lines)-1])
	// Output:
	// O0042
	// %
}

func ExamplePattern_Matches() {
	p := fusionfmt.Pattern{Value: "G54"}
	fmt.Println(p.Matches("G54"))
	fmt.Println(p.Matches("G54 P1"))
	fmt.Println(p.Matches("N10G54"))
	// Output:
	// true
	// true
	// false
}
