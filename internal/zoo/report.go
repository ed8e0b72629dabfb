package zoo

import (
	"fmt"
	"strings"

	"github.com/iotaledger/typed.go/lo"
	"github.com/iotaledger/typed.go/stringify"
	"github.com/iotaledger/typed.go/typed"
)

// Report is the outcome of Zoo.Run. Entity pointers are nil if nothing was found.
type Report struct {
	DogLookup   typed.ID[Dog, uint64]
	DogIDsMatch bool
	FirstDog    *Dog
	FoundDog    *Dog

	Ducks []DuckEntry

	CatLookup typed.ID[Cat, string]
	FirstCat  *Cat
	FoundCat  *Cat

	PrinterLookup typed.ID[Printer, SerialNumber]
	PrinterCount  uint
	FoundPrinter  *Printer
}

// DuckEntry is a duck id together with its position.
type DuckEntry struct {
	Position DuckPosition
	ID       typed.ID[Duck, uint64]
}

func (d DuckEntry) String() string {
	return fmt.Sprintf("Duck %s has ID %s", d.Position, d.ID)
}

// Lines renders the report as human readable lines.
func (r *Report) Lines() []string {
	lines := []string{
		lo.Cond(r.DogIDsMatch, "IDs match", "IDs differ"),
	}

	if r.FoundDog != nil {
		lines = append(lines, "Found dog with ID "+r.FoundDog.ID().String())
	} else {
		lines = append(lines, "No dog with ID "+r.DogLookup.String())
	}

	if r.FirstDog != nil {
		lines = append(lines, "The 0-th dog has ID "+r.FirstDog.ID().String())
	}

	lines = append(lines, lo.Map(r.Ducks, DuckEntry.String)...)

	if r.FirstCat != nil {
		lines = append(lines, "Cat 1 has ID "+r.FirstCat.ID().String())
	}

	if r.FoundCat != nil {
		lines = append(lines, "Cat 2 has ID "+r.FoundCat.ID().String())
	} else {
		lines = append(lines, "No cat with ID "+r.CatLookup.String())
	}

	lines = append(lines, fmt.Sprintf("We've got %d printers.", r.PrinterCount))

	if r.FoundPrinter != nil {
		lines = append(lines, "Found printer with serial number "+r.FoundPrinter.ID().String())
	} else {
		lines = append(lines, "No printer with serial number "+r.PrinterLookup.String())
	}

	return lines
}

func (r *Report) String() string {
	return stringify.Struct("Report",
		stringify.NewStructField("DogIDsMatch", r.DogIDsMatch),
		stringify.NewStructField("Ducks", len(r.Ducks)),
		stringify.NewStructField("PrinterCount", uint64(r.PrinterCount)),
		stringify.NewStructField("Lines", strings.Join(r.Lines(), "; ")),
	)
}
