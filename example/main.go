package main

import (
	"errors"
	"fmt"
	"os"

	aport "github.com/aglyzov/go-aport"
)

func main() {
	tr := aport.New[int]()
	tr.Insert("al", 0)
	tr.Insert("arnold", 1)
	tr.Insert("andrew", 2)
	tr.Insert("hello", 3)
	tr.Insert("helium", 4)

	fmt.Println("tree:")
	tr.Dump(os.Stdout)

	println("------")

	// Optimistic retrieval: "arbold" was never inserted, but it has the
	// right length and matches every branch byte on the way to "arnold".
	if val, err := tr.Get("arbold"); err == nil {
		fmt.Printf("get(arbold) -> %d (false positive)\n", *val)
	}
	fmt.Printf("contains(arbold) -> %v\n", tr.Contains("arbold"))

	// "astrid" fails even optimistically: 's' selects no branch.
	if _, err := tr.Get("astrid"); errors.Is(err, aport.ErrNoSuchKey) {
		fmt.Printf("get(astrid) -> %v\n", err)
	}

	println("------")

	// Iteration runs most recently inserted first.
	for it := tr.Iter(); it.Next(); {
		fmt.Printf("%s = %d\n", it.Key(), *it.Value())
	}

	println("------")

	// GetOrInsert default-constructs missing values.
	counts := aport.NewRadix[int]()
	for _, w := range []string{"ant", "bee", "ant", "cat", "ant", "bee"} {
		*counts.GetOrInsert(w) += 1
	}
	counts.Each(func(key string, val *int) bool {
		fmt.Printf("%s: %d\n", key, *val)
		return true
	})
}
