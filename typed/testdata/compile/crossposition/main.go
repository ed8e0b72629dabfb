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
	dogs := typed.NewCollection[dog, uint64, uint]()
	ducks := typed.NewCollection[duck, uint64, uint]()

	for i := dogs.Position(0); i.Less(dogs.Count()); i.Inc() {
		fmt.Println(ducks.At(i).ID())
	}
}
