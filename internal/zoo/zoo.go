package zoo

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/typed.go/lo"
	"github.com/iotaledger/typed.go/logger"
	"github.com/iotaledger/typed.go/typed"
)

// Zoo keeps one collection per entity type.
type Zoo struct {
	log *logger.Logger

	dogs     *Dogs
	ducks    *Ducks
	cats     *Cats
	printers *Printers

	lookupDog     typed.ID[Dog, uint64]
	lookupCat     typed.ID[Cat, string]
	lookupPrinter typed.ID[Printer, SerialNumber]
}

// New creates a Zoo populated from the given config. Duplicate ids are logged and skipped.
func New(cfg Config, log *logger.Logger) (*Zoo, error) {
	printers := make([]Printer, 0, len(cfg.Printers))
	for _, serial := range cfg.Printers {
		serialNumber, err := ParseSerialNumber(serial)
		if err != nil {
			return nil, errors.Wrap(err, "invalid printer")
		}
		printers = append(printers, NewPrinter(serialNumber))
	}

	lookupPrinter, err := ParseSerialNumber(cfg.Lookups.Printer)
	if err != nil {
		return nil, errors.Wrap(err, "invalid printer lookup")
	}

	z := &Zoo{
		log:           log,
		dogs:          typed.NewCollection[Dog, uint64, uint](),
		ducks:         typed.NewCollection[Duck, uint64, uint](),
		cats:          typed.NewIndexedCollection[Cat, string, uint](),
		printers:      typed.NewIndexedCollection[Printer, SerialNumber, uint](),
		lookupDog:     typed.NewID[Dog](cfg.Lookups.Dog),
		lookupCat:     typed.NewID[Cat](cfg.Lookups.Cat),
		lookupPrinter: typed.NewID[Printer](lookupPrinter),
	}

	populate(log, "dog", z.dogs, lo.Map(cfg.Dogs, NewDog))
	populate(log, "duck", z.ducks, lo.Map(cfg.Ducks, NewDuck))
	populate(log, "cat", z.cats, lo.Map(cfg.Cats, NewCat))
	populate(log, "printer", z.printers, printers)

	return z, nil
}

// Dogs returns the dog collection.
func (z *Zoo) Dogs() *Dogs {
	return z.dogs
}

// Ducks returns the duck collection.
func (z *Zoo) Ducks() *Ducks {
	return z.ducks
}

// Cats returns the cat collection.
func (z *Zoo) Cats() *Cats {
	return z.cats
}

// Printers returns the printer collection.
func (z *Zoo) Printers() *Printers {
	return z.printers
}

// Run walks through the collections and reports what it found.
func (z *Zoo) Run() *Report {
	report := &Report{
		DogLookup:     z.lookupDog,
		CatLookup:     z.lookupCat,
		PrinterLookup: z.lookupPrinter,
		PrinterCount:  z.printers.Count().Get(),
	}

	report.FirstDog, _ = z.dogs.Get(z.dogs.Position(0))
	if report.FirstDog != nil {
		report.DogIDsMatch = report.FirstDog.ID() == NewDog(z.lookupDog.Get()).ID()
	}
	report.FoundDog, _ = z.dogs.Find(z.lookupDog)

	for position := z.ducks.Position(0); position.Less(z.ducks.Count()); position.Inc() {
		report.Ducks = append(report.Ducks, DuckEntry{
			Position: position,
			ID:       z.ducks.At(position).ID(),
		})
	}

	report.FirstCat, _ = z.cats.Get(z.cats.Position(0))
	report.FoundCat, _ = z.cats.Find(z.lookupCat)
	report.FoundPrinter, _ = z.printers.Find(z.lookupPrinter)

	for _, line := range report.Lines() {
		z.log.Debug(line)
	}

	return report
}

func populate[E typed.Identifiable[E, IDRaw], IDRaw comparable](log *logger.Logger, kind string, collection *typed.Collection[E, IDRaw, uint], entities []E) {
	for _, entity := range entities {
		if _, inserted := collection.Add(entity); !inserted {
			log.Warnw("ignoring duplicate "+kind, "id", entity.ID())

			continue
		}

		log.Debugw("added "+kind, "id", entity.ID(), "count", collection.Count())
	}
}
