package main

import (
	"fmt"

	"github.com/iotaledger/typed.go/typed"
)

type dog struct {
	typed.Identity[dog, uint64]
}

type duck struct {
	typed.Identity[duck, uint64]
}

func main() {
	d := dog{Identity: typed.NewIdentity[dog](uint64(1))}
	k := duck{Identity: typed.NewIdentity[duck](uint64(1))}

	fmt.Println(d.ID() == k.ID())
}
