package main

import (
	"fmt"

	"github.com/iotaledger/typed.go/typed"
)

type cat struct {
	typed.Identity[cat, string]
}

func main() {
	cats := typed.NewCollection[cat, string, uint]()
	cats.Add(cat{Identity: typed.NewIdentity[cat]("Cat-2022-04-27-01")})

	fmt.Println(cats.Find("Cat-2022-04-27-01"))
}
