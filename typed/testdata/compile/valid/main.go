package main

import (
	"fmt"

	"github.com/iotaledger/typed.go/typed"
)

type dog struct {
	typed.Identity[dog, uint64]
}

type dogs = typed.Collection[dog, uint64, uint]

func main() {
	var collection dogs

	stored, _ := collection.Add(dog{Identity: typed.NewIdentity[dog](uint64(1))})
	found, _ := collection.Find(typed.NewID[dog](uint64(1)))

	fmt.Println(stored.ID() == found.ID(), collection.At(collection.Position(0)).ID())
}
