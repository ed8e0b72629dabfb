package main

import (
	"fmt"

	"github.com/iotaledger/typed.go/typed"
)

type dog struct{}

type duck struct{}

func main() {
	dogID := typed.NewID[dog](uint64(1))

	fmt.Println(typed.ID[duck, uint64](dogID))
}
