package zoo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidSerialNumber is returned if a serial number can not be parsed.
var ErrInvalidSerialNumber = errors.New("invalid serial number")

// SerialNumber identifies a printer. Serial numbers are ordered by region, then version, then facility.
type SerialNumber struct {
	Region   uint8
	Version  uint8
	Facility uint16
}

// ParseSerialNumber parses the "version.region.facility" notation produced by SerialNumber.String.
func ParseSerialNumber(s string) (SerialNumber, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return SerialNumber{}, errors.Wrapf(ErrInvalidSerialNumber, "%q does not have the form version.region.facility", s)
	}

	version, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return SerialNumber{}, errors.Wrapf(ErrInvalidSerialNumber, "version of %q: %s", s, err)
	}
	region, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return SerialNumber{}, errors.Wrapf(ErrInvalidSerialNumber, "region of %q: %s", s, err)
	}
	facility, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return SerialNumber{}, errors.Wrapf(ErrInvalidSerialNumber, "facility of %q: %s", s, err)
	}

	return SerialNumber{
		Region:   uint8(region),
		Version:  uint8(version),
		Facility: uint16(facility),
	}, nil
}

func (s SerialNumber) String() string {
	return fmt.Sprintf("%d.%d.%d", s.Version, s.Region, s.Facility)
}
