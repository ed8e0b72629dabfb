package zoo

import (
	"github.com/iotaledger/typed.go/typed"
)

// Dog is identified by an unsigned number.
type Dog struct {
	typed.Identity[Dog, uint64]
}

// NewDog returns the Dog with the given id.
func NewDog(id uint64) Dog {
	return Dog{Identity: typed.NewIdentity[Dog](id)}
}

// Dogs holds dogs in insertion order.
type Dogs = typed.Collection[Dog, uint64, uint]

// Duck is identified by an unsigned number as well, but a duck id never compares to a dog id.
type Duck struct {
	typed.Identity[Duck, uint64]
}

// NewDuck returns the Duck with the given id.
func NewDuck(id uint64) Duck {
	return Duck{Identity: typed.NewIdentity[Duck](id)}
}

// Ducks holds ducks in insertion order.
type Ducks = typed.Collection[Duck, uint64, uint]

// DuckPosition addresses a duck inside Ducks.
type DuckPosition = typed.Position[Ducks, uint]

// Cat is identified by a name.
type Cat struct {
	typed.Identity[Cat, string]
}

// NewCat returns the Cat with the given id.
func NewCat(id string) Cat {
	return Cat{Identity: typed.NewIdentity[Cat](id)}
}

// Cats holds cats in insertion order.
type Cats = typed.Collection[Cat, string, uint]

// Printer is identified by its SerialNumber.
type Printer struct {
	typed.Identity[Printer, SerialNumber]
}

// NewPrinter returns the Printer with the given serial number.
func NewPrinter(serial SerialNumber) Printer {
	return Printer{Identity: typed.NewIdentity[Printer](serial)}
}

// Printers holds printers in insertion order.
type Printers = typed.Collection[Printer, SerialNumber, uint]
