package natsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PortNumbersCompareAsIntegers(t *testing.T) {
	names := []string{
		"Ethernet1/10",
		"Ethernet1/2",
		"Ethernet1/1",
		"Ethernet10/1",
		"Ethernet2/1",
	}

	New().Strings(names)

	assert.Equal(t, []string{
		"Ethernet1/1",
		"Ethernet1/2",
		"Ethernet1/10",
		"Ethernet2/1",
		"Ethernet10/1",
	}, names)
}

func Test_MixedVendorsAndDeviceNames(t *testing.T) {
	names := []string{"swp10", "swp2", "swp1", "eth0"}

	New().Strings(names)

	assert.Equal(t, []string{"eth0", "swp1", "swp2", "swp10"}, names)
}

func Test_CompareIsTotal(t *testing.T) {
	s := New()

	assert.Equal(t, 0, s.Compare("Ethernet1/1", "Ethernet1/1"))
	assert.Equal(t, -s.Compare("Ethernet1/2", "Ethernet1/10"), s.Compare("Ethernet1/10", "Ethernet1/2"))

	// Numerically equal but distinct spellings keep a stable order.
	assert.NotEqual(t, 0, s.Compare("swp01", "swp1"))
}

func Test_SortIsIdempotent(t *testing.T) {
	names := []string{"spine-04", "spine-02", "spine-01", "spine-03"}

	s := New()
	s.Strings(names)
	first := append([]string(nil), names...)
	s.Strings(names)

	assert.Equal(t, first, names)
	assert.Equal(t, []string{"spine-01", "spine-02", "spine-03", "spine-04"}, names)
}
